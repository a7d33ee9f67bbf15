package roster

import "courtsim/internal/match"

// BuiltIn returns the two exhibition rosters keyed by year.
func BuiltIn() map[string]match.TeamSpec {
	return map[string]match.TeamSpec{
		"2012": {
			Name:  "2012 Dream Team",
			Color: "red",
			Players: []match.PlayerSpec{
				{Name: "Chris Paul", Position: 1, Speed: 0.6},
				{Name: "Kobe Bryant", Position: 2, Speed: 0.5},
				{Name: "Kevin Durant", Position: 3, Speed: 0.4},
				{Name: "LeBron James", Position: 4, Speed: 0.3},
				{Name: "Tyson Chandler", Position: 5, Speed: 0.2},
			},
		},
		"1992": {
			Name:  "1992 Dream Team",
			Color: "lightblue",
			Players: []match.PlayerSpec{
				{Name: "Magic Johnson", Position: 1, Speed: 0.6},
				{Name: "Michael Jordan", Position: 2, Speed: 0.5},
				{Name: "Larry Bird", Position: 3, Speed: 0.4},
				{Name: "Charles Barkley", Position: 4, Speed: 0.3},
				{Name: "Karl Malone", Position: 5, Speed: 0.2},
			},
		},
	}
}
