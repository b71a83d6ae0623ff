package stats

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/domino14/krabbels/tilemapping"
)

// DrawOdds is the probability that drawing n tiles from the bag yields at
// least one copy of letter. Draws larger than the bag are capped at the
// bag size.
func DrawOdds(bag *tilemapping.Bag, letter rune, n int) float64 {
	total := bag.TilesRemaining()
	copies := bag.CountOf(letter)
	if n > total {
		n = total
	}
	if n <= 0 || copies == 0 {
		return 0
	}
	others := total - copies
	if others < n {
		return 1
	}
	// 1 - P(none of the n tiles is this letter)
	none := float64(combin.Binomial(others, n)) / float64(combin.Binomial(total, n))
	return 1 - none
}

// LetterOdds computes DrawOdds for every letter still in the bag.
func LetterOdds(bag *tilemapping.Bag, n int) map[rune]float64 {
	odds := make(map[rune]float64)
	for _, letter := range bag.LetterDistribution().Letters() {
		if bag.CountOf(letter) > 0 {
			odds[letter] = DrawOdds(bag, letter, n)
		}
	}
	return odds
}

// BagValue returns the mean and standard deviation of the point values of
// the tiles left in the bag.
func BagValue(bag *tilemapping.Bag) (mean, stdev float64) {
	tiles := bag.Peek()
	if len(tiles) == 0 {
		return 0, 0
	}
	vals := make([]float64, len(tiles))
	for i, t := range tiles {
		vals[i] = float64(t.Value)
	}
	if len(vals) == 1 {
		return vals[0], 0
	}
	return stat.MeanStdDev(vals, nil)
}
