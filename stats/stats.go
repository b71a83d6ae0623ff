package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic keeps every value pushed to it, e.g. the scores of the moves
// validated in a session. Sessions are short, so keeping the raw values is
// fine.
type Statistic struct {
	vals []float64
}

func (s *Statistic) Push(val float64) {
	s.vals = append(s.vals, val)
}

func (s *Statistic) Mean() float64 {
	if len(s.vals) == 0 {
		return 0.0
	}
	return stat.Mean(s.vals, nil)
}

// Stdev is the sample standard deviation; 0 for fewer than two values.
func (s *Statistic) Stdev() float64 {
	if len(s.vals) <= 1 {
		return 0.0
	}
	return stat.StdDev(s.vals, nil)
}

// Max returns the largest value pushed, or 0 if there are none.
func (s *Statistic) Max() float64 {
	if len(s.vals) == 0 {
		return 0.0
	}
	m := s.vals[0]
	for _, v := range s.vals[1:] {
		m = math.Max(m, v)
	}
	return m
}

func (s *Statistic) Last() float64 {
	if len(s.vals) == 0 {
		return 0.0
	}
	return s.vals[len(s.vals)-1]
}

func (s *Statistic) Iterations() int {
	return len(s.vals)
}
