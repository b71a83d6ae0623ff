package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"
)

// constSource always returns the same offset from the end (or start) of
// the range it is asked about.
type constSource struct {
	fromEnd bool
}

func (c constSource) Intn(n int) int {
	if c.fromEnd {
		return n - 1
	}
	return 0
}

func bagCounts(ts Tiles) map[rune]int {
	return lo.CountValuesBy(ts, func(t Tile) rune { return t.Letter })
}

func TestBag(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()
	bag := NewBag(ld, SeededRandSource("bag"))
	is.Equal(bag.TilesRemaining(), 102)
	is.Equal(bag.InitialNumTiles(), 102)

	tileMap := map[rune]int{}
	for bag.TilesRemaining() > 0 {
		tiles := bag.DrawAtMost(1)
		is.Equal(len(tiles), 1)
		is.Equal(tiles[0].Value, ld.Score(tiles[0].Letter))
		tileMap[tiles[0].Letter]++
	}
	for _, letter := range ld.Letters() {
		is.Equal(tileMap[letter], ld.Count(letter))
	}
}

func TestDraw(t *testing.T) {
	is := is.New(t)
	bag := NewBag(KrabbelsLetterDistribution(), SeededRandSource("draw"))

	letters := bag.DrawAtMost(7)
	is.Equal(len(letters), 7)
	is.Equal(bag.TilesRemaining(), 95)
}

func TestDrawConservation(t *testing.T) {
	is := is.New(t)
	bag := NewBag(KrabbelsLetterDistribution(), SeededRandSource("conservation"))

	for bag.TilesRemaining() > 0 {
		before := bag.Peek()
		drawn := bag.DrawAtMost(7)
		is.Equal(len(before), bag.TilesRemaining()+len(drawn))

		beforeCounts := bagCounts(before)
		for letter, ct := range bagCounts(drawn) {
			is.True(ct <= beforeCounts[letter]) // drawn tiles came from the bag
		}
		afterCounts := bagCounts(bag.Peek())
		for letter, ct := range beforeCounts {
			is.Equal(ct, afterCounts[letter]+bagCounts(drawn)[letter])
		}
	}
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)
	bag := NewBag(KrabbelsLetterDistribution(), SeededRandSource("atmost"))

	for i := 0; i < 14; i++ {
		is.Equal(len(bag.DrawAtMost(7)), 7)
	}
	is.Equal(bag.TilesRemaining(), 4)
	letters := bag.DrawAtMost(10)
	is.Equal(len(letters), 4)
	is.Equal(bag.TilesRemaining(), 0)

	// Try to draw one more time.
	letters = bag.DrawAtMost(7)
	is.Equal(len(letters), 0)
	is.True(letters != nil)
	is.Equal(bag.TilesRemaining(), 0)
}

func TestDrawWalksDistributionOrder(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()

	first := NewBag(ld, constSource{})
	is.Equal(first.DrawAtMost(3).UserVisible(), "AAA")
	is.Equal(first.CountOf('A'), 6)

	last := NewBag(ld, constSource{fromEnd: true})
	drawn := last.DrawAtMost(3)
	is.Equal(drawn.UserVisible(), "??Z")
	is.Equal(drawn[0], Tile{Letter: BlankLetter, Value: 0})
	is.Equal(drawn[2], Tile{Letter: 'Z', Value: 10})
}

func TestSeededBagsAgree(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()
	b1 := NewBag(ld, SeededRandSource("same"))
	b2 := NewBag(ld, SeededRandSource("same"))
	for i := 0; i < 14; i++ {
		is.Equal(b1.DrawAtMost(7), b2.DrawAtMost(7))
	}
}

func TestPeekOrder(t *testing.T) {
	is := is.New(t)
	bag := NewBag(KrabbelsLetterDistribution(), constSource{})
	bag.DrawAtMost(9) // all the A's
	peeked := bag.Peek()
	is.Equal(len(peeked), 93)
	is.Equal(peeked[0], Tile{Letter: 'B', Value: 3})
	is.Equal(peeked[len(peeked)-1].Letter, BlankLetter)
}
