package searcher

import "math"

type uct struct {
	c   float64
	lnN float64
}

// newUCT prepares the UCT score over siblings that share N total visits.
func newUCT(c float64, N int) uct {
	if N < 0 {
		panic("N cannot be negative")
	}
	u := uct{c: c}
	if N > 0 {
		u.lnN = math.Log(float64(N))
	}
	return u
}

func (u uct) evaluate(wins, visits int) float64 {
	// Unvisited children go first
	if visits == 0 {
		return math.Inf(1)
	}
	exploitation := float64(wins) / float64(visits)
	if u.c == 0 {
		return exploitation
	}
	// UCT = w/n + c*sqrt(ln(N)/n)
	return exploitation + u.c*math.Sqrt(u.lnN/float64(visits))
}
