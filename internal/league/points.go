// Package league holds the scoring rules of the league: how place points are
// derived from table points and how per-game results roll up into tournament
// standings and player statistics.
package league

import "math"

// Placement is a finishing position at a four-player table.
type Placement int

const (
	FirstPlace Placement = iota + 1
	SecondPlace
	ThirdPlace
	FourthPlace
)

// PlacePoint derives the place point of a seat from its table point.
// Table points 4/3/2/1 map to +3/+1/-1/-3, so a full table sums to zero.
func PlacePoint(tablePoint float64) float64 {
	return tablePoint*2 - 5
}

// PlacementFor maps a table point to a finishing position. Shared places
// (e.g. two seats on 1.5) count towards the lower position.
func PlacementFor(tablePoint float64) Placement {
	switch {
	case tablePoint >= 4:
		return FirstPlace
	case tablePoint >= 3:
		return SecondPlace
	case tablePoint >= 2:
		return ThirdPlace
	default:
		return FourthPlace
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
