package sim

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"courtsim/internal/match"
)

type fakeProgram struct{ msgs []tea.Msg }

func (f *fakeProgram) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

type fakeControls struct {
	paused  bool
	passes  []int
	moves   [][2]float64
	resets  int
	shots   int
	userOn  bool
	menuOff bool
}

func (f *fakeControls) TogglePause() bool {
	f.paused = !f.paused
	return f.paused
}
func (f *fakeControls) ToggleUser() bool {
	f.userOn = !f.userOn
	return f.userOn
}
func (f *fakeControls) ToggleMenu() bool {
	f.menuOff = true
	return false
}
func (f *fakeControls) Reset() { f.resets++ }
func (f *fakeControls) UserShoot() bool {
	f.shots++
	return true
}
func (f *fakeControls) UserPass(pos int) bool {
	f.passes = append(f.passes, pos)
	return true
}
func (f *fakeControls) MoveUser(dx, dy float64) { f.moves = append(f.moves, [2]float64{dx, dy}) }

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTUIWriterMessages(t *testing.T) {
	p := &fakeProgram{}
	w := &TUIWriter{program: p}
	if err := w.WriteEvent(match.Event{Kind: match.EventSteal, Text: "Bird steals the ball."}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if lm, ok := p.msgs[0].(logMsg); !ok || !strings.Contains(lm.line, "Bird steals") {
		t.Fatalf("expected logMsg, got %#v", p.msgs[0])
	}
	_ = w.WriteFrame(match.Snapshot{Tick: 3})
	if _, ok := p.msgs[1].(frameMsg); !ok {
		t.Fatalf("expected frameMsg, got %T", p.msgs[1])
	}
	_ = w.WriteBoxScore(match.BoxScore{})
	if _, ok := p.msgs[2].(boxMsg); !ok {
		t.Fatalf("expected boxMsg, got %T", p.msgs[2])
	}
	w.SetAdminStatus(true)
	if _, ok := p.msgs[3].(adminMsg); !ok {
		t.Fatalf("expected adminMsg, got %T", p.msgs[3])
	}
	w.SetControls(&fakeControls{})
	if _, ok := p.msgs[4].(setControlsMsg); !ok {
		t.Fatalf("expected setControlsMsg, got %T", p.msgs[4])
	}
}

func newSizedModel(t *testing.T) tuiModel {
	t.Helper()
	m := newTUIModel(*sampleSettings())
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 60})
	return mi.(tuiModel)
}

func TestTUIKeysDriveControls(t *testing.T) {
	m := newSizedModel(t)
	c := &fakeControls{}
	mi, _ := m.Update(setControlsMsg{c: c})
	m = mi.(tuiModel)

	for _, k := range []string{" ", "u", "x", "3", "left", "up", "r", "enter"} {
		mi, _ = m.Update(key(k))
		m = mi.(tuiModel)
	}
	if !c.paused || !c.userOn || c.shots != 1 || c.resets != 1 || !c.menuOff {
		t.Fatalf("controls not driven: %+v", c)
	}
	if len(c.passes) != 1 || c.passes[0] != 3 {
		t.Fatalf("expected a pass to position 3, got %v", c.passes)
	}
	if len(c.moves) != 2 || c.moves[0] != [2]float64{-userStepFt, 0} || c.moves[1] != [2]float64{0, -userStepFt} {
		t.Fatalf("unexpected moves %v", c.moves)
	}
	if m.status != "tip-off" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestTUIKeysWithoutControls(t *testing.T) {
	m := newSizedModel(t)
	mi, _ := m.Update(key("u"))
	m = mi.(tuiModel)
	if m.status != "" {
		t.Fatalf("key without controls should be ignored")
	}
}

func TestWrapToggle(t *testing.T) {
	m := newTUIModel(*sampleSettings())
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	m = mi.(tuiModel)
	long := "one two three four five six"
	mi, _ = m.Update(logMsg{line: long})
	m = mi.(tuiModel)
	if strings.Contains(m.vp.View(), "five") {
		t.Fatalf("expected the line to be cut before wrap")
	}
	mi, _ = m.Update(key("w"))
	m = mi.(tuiModel)
	if !m.wrap {
		t.Fatalf("wrap not toggled")
	}
	if !strings.Contains(m.vp.View(), "five") {
		t.Fatalf("expected wrapped content to show the tail of the line")
	}
}

func TestScrollToggle(t *testing.T) {
	m := newSizedModel(t)
	mi, _ := m.Update(key("s"))
	m = mi.(tuiModel)
	if m.autoscroll {
		t.Fatalf("autoscroll should be off")
	}
}

func TestRenderCourtPlacesAgents(t *testing.T) {
	m := newSizedModel(t)
	snap := match.Snapshot{
		Court: match.CourtView{TotalWidth: 832, TotalHeight: 480, Margin: 40, Width: 752, Height: 400},
		Players: []match.PlayerView{
			{Team: 0, Position: 1, X: 100, Y: 240},
			{Team: 1, Position: 5, X: 700, Y: 240, User: false},
			{Team: 0, Position: 2, X: 400, Y: 100, User: true},
		},
		Ball: match.BallView{X: 416, Y: 300, InFlight: true},
	}
	snap.Court.HoopOne.X, snap.Court.HoopOne.Y = 78, 240
	snap.Court.HoopTwo.X, snap.Court.HoopTwo.Y = 754, 240
	mi, _ := m.Update(frameMsg{snap})
	m = mi.(tuiModel)
	court := m.renderCourt()
	for _, want := range []string{"1", "5", "@", "O", "*"} {
		if !strings.Contains(court, want) {
			t.Fatalf("court missing %q:\n%s", want, court)
		}
	}
	if rows := strings.Count(court, "\n") + 1; rows != m.courtRows() {
		t.Fatalf("court has %d rows, want %d", rows, m.courtRows())
	}
}

func TestBoxScoreTable(t *testing.T) {
	m := newSizedModel(t)
	b := match.BoxScore{}
	b.Teams[0] = match.TeamBox{Name: "Home", Score: 2, Players: []match.StatLine{{Name: "Chris Paul", Stats: match.Stats{PTS: 2}}}}
	b.Teams[1] = match.TeamBox{Name: "Away"}
	mi, _ := m.Update(boxMsg{b})
	m = mi.(tuiModel)
	if got := len(m.box.Rows()); got != 5 {
		t.Fatalf("expected 5 table rows, got %d", got)
	}
	if !strings.Contains(m.View(), "Chris Paul") {
		t.Fatalf("box score not rendered")
	}
}
