package match

import "time"

// StatLine is one player's row in a box score.
type StatLine struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Stats    Stats  `json:"stats"`
}

// TeamBox is one team's half of a box score.
type TeamBox struct {
	Name    string     `json:"name"`
	Score   int        `json:"score"`
	Players []StatLine `json:"players"`
	Totals  Stats      `json:"totals"`
}

// BoxScore tabulates every counter of both teams.
type BoxScore struct {
	MatchID   string     `json:"match_id"`
	Period    int        `json:"period"`
	Final     bool       `json:"final"`
	Teams     [2]TeamBox `json:"teams"`
	Timestamp time.Time  `json:"ts"`
}

// BoxScore returns the current box score.
func (g *Game) BoxScore() BoxScore {
	bs := BoxScore{MatchID: g.settings.MatchID, Period: g.period, Final: g.over, Timestamp: g.now()}
	for i := 0; i < 2; i++ {
		t := g.registry.Team(i)
		tb := TeamBox{Name: t.Name, Score: t.Score()}
		for _, p := range t.Players {
			tb.Players = append(tb.Players, StatLine{Name: p.Name, Position: p.Position, Stats: p.Stats})
			tb.Totals = tb.Totals.Add(p.Stats)
		}
		bs.Teams[i] = tb
	}
	return bs
}
