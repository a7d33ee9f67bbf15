package roster

import (
	"testing"

	"courtsim/internal/match"
)

func TestBuiltInRosters(t *testing.T) {
	teams := BuiltIn()
	for _, k := range []string{"2012", "1992"} {
		tm, ok := teams[k]
		if !ok {
			t.Fatalf("team %s not found", k)
		}
		if err := match.ValidateTeam(tm); err != nil {
			t.Fatalf("team %s invalid: %v", k, err)
		}
	}
	if teams["2012"].Players[0].Name != "Chris Paul" {
		t.Fatalf("unexpected point guard %s", teams["2012"].Players[0].Name)
	}
}

func TestLoadLeague(t *testing.T) {
	l, err := Load("testdata/league.yaml")
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if l.Name != "exhibition" || len(l.Teams) != 2 {
		t.Fatalf("unexpected league %+v", l)
	}
	if l.Teams[0].Players[4].Name != "Kareem Abdul-Jabbar" {
		t.Fatalf("unexpected center %s", l.Teams[0].Players[4].Name)
	}
	tm, err := Lookup(l, "showtime")
	if err != nil || tm.Color != "gold" {
		t.Fatalf("lookup showtime: %+v %v", tm, err)
	}
	tm, err = Lookup(l, "1992")
	if err != nil || tm.Name != "Barcelona Select" {
		t.Fatalf("league team should shadow built-in, got %q", tm.Name)
	}
	if tm, _ = Lookup(nil, "1992"); tm.Name != "1992 Dream Team" {
		t.Fatalf("built-in lookup got %q", tm.Name)
	}
}

func TestLoadRejectsShortBench(t *testing.T) {
	if _, err := Load("testdata/bad.yaml"); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(nil, "nope"); err == nil {
		t.Fatalf("expected unknown team error")
	}
	keys := Keys(nil)
	if len(keys) != 2 || keys[0] != "1992" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestValidateDuplicateKey(t *testing.T) {
	tm := BuiltIn()["2012"]
	l := &League{Teams: []Entry{{Key: "a", TeamSpec: tm}, {Key: "a", TeamSpec: tm}}}
	if err := l.Validate(); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}
