package match

import (
	"strings"

	"courtsim/internal/court"
	"courtsim/internal/geom"
)

const (
	teamSize   = 5
	startSpeed = 5.0

	avgRadiusFt = 18.25 / 12 // average shoulder width
	avgWeight   = 220.0
)

// Indices into Player.Tendencies.
const (
	tendPass = iota
	tendShoot
	tendDrive
	tendHold
	tendMove
)

var positionWeights = [teamSize]float64{200, 210, 220, 230, 240}

// tendency weights per position class, guard to center
var tendencyTable = [5][teamSize]float64{
	tendPass:  {5, 3, 3, 2, 2},
	tendShoot: {2, 5, 3, 3, 2},
	tendDrive: {3, 4, 3, 5, 4},
	tendHold:  {2, 3, 3, 4, 5},
	tendMove:  {3, 3, 3, 2, 3},
}

// Stats is a player's box score line.
type Stats struct {
	PTS     int `json:"pts"`
	FGM     int `json:"fgm"`
	FGA     int `json:"fga"`
	ThreePM int `json:"3pm"`
	ThreePA int `json:"3pa"`
	ORB     int `json:"orb"`
	DRB     int `json:"drb"`
	TRB     int `json:"trb"`
	AST     int `json:"ast"`
	BLK     int `json:"blk"`
	STL     int `json:"stl"`
	TOV     int `json:"tov"`
}

// StatKeys lists the box score columns in display order.
var StatKeys = []string{"PTS", "FGM", "FGA", "3PM", "3PA", "ORB", "DRB", "TRB", "AST", "BLK", "STL", "TOV"}

// Values returns the counters in StatKeys order.
func (s Stats) Values() []int {
	return []int{s.PTS, s.FGM, s.FGA, s.ThreePM, s.ThreePA, s.ORB, s.DRB, s.TRB, s.AST, s.BLK, s.STL, s.TOV}
}

// Add returns the element-wise sum of two stat lines.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		PTS: s.PTS + o.PTS, FGM: s.FGM + o.FGM, FGA: s.FGA + o.FGA,
		ThreePM: s.ThreePM + o.ThreePM, ThreePA: s.ThreePA + o.ThreePA,
		ORB: s.ORB + o.ORB, DRB: s.DRB + o.DRB, TRB: s.TRB + o.TRB,
		AST: s.AST + o.AST, BLK: s.BLK + o.BLK, STL: s.STL + o.STL, TOV: s.TOV + o.TOV,
	}
}

// PlayerRadius returns the bounding radius for a position class.
func PlayerRadius(position int, scale float64) float64 {
	return positionWeights[clampPosition(position)-1] / avgWeight * avgRadiusFt * scale
}

// Tendencies returns the cumulative pass/shoot/drive/hold/move thresholds
// for a position class. The last threshold is 1.
func Tendencies(position int) [5]float64 {
	n := clampPosition(position) - 1
	var total float64
	for i := range tendencyTable {
		total += tendencyTable[i][n]
	}
	var out [5]float64
	var sum float64
	for i := range tendencyTable {
		sum += tendencyTable[i][n] / total
		out[i] = sum
	}
	out[tendMove] = 1
	return out
}

func clampPosition(position int) int {
	if position < 1 {
		return 1
	}
	if position > teamSize {
		return teamSize
	}
	return position
}

// Player is one autonomous agent on the court.
type Player struct {
	g *Game

	Name     string
	Position int
	Speed    float64
	Team     int
	R        float64

	Location      geom.Point
	Spot          geom.Point
	Dir           geom.Point
	StartLocation geom.Point
	StartSpeed    float64
	CurrentSpeed  float64

	HasBall      bool
	OnOffense    bool
	OnDefense    bool
	InTransition bool
	Inbounding   bool

	Tendencies [5]float64
	Stats      Stats

	Matchup    *Player
	Teammates  []*Player
	Opponents  []*Player
	AttackHoop geom.Point
	DefendHoop geom.Point
	side       court.Side
}

func newPlayer(g *Game, spec PlayerSpec, team int) *Player {
	return &Player{
		g:            g,
		Name:         spec.Name,
		Position:     spec.Position,
		Speed:        spec.Speed,
		Team:         team,
		R:            PlayerRadius(spec.Position, g.court.Scale),
		Tendencies:   Tendencies(spec.Position),
		StartSpeed:   startSpeed,
		CurrentSpeed: startSpeed,
	}
}

// LastName returns the display label used on court.
func (p *Player) LastName() string {
	fields := strings.Fields(p.Name)
	if len(fields) < 2 {
		return p.Name
	}
	return fields[len(fields)-1]
}

func (p *Player) overlaps(o *Player) bool {
	return geom.Distance(p.Location, o.Location) < (p.R+o.R)/2
}

func (p *Player) almostEqual(a, b float64) bool {
	return geom.AlmostEqual(a, b, p.CurrentSpeed)
}
