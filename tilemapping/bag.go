package tilemapping

import (
	"github.com/rs/zerolog/log"
)

// A Bag is the bag o'tiles! It only ever shrinks: there is no way to put
// tiles back during a session.
type Bag struct {
	numTiles        int
	initialNumTiles int

	// uniqueLetters is the distribution's letter order. Drawing walks the
	// per-letter counts in this order.
	uniqueLetters      []rune
	tileMap            map[rune]int
	letterDistribution *LetterDistribution
	randSource         RandSource
}

// NewBag fills a bag from the distribution. If randSource is nil the
// process-wide frand generator is used.
func NewBag(ld *LetterDistribution, randSource RandSource) *Bag {
	if randSource == nil {
		randSource = DefaultRandSource()
	}
	tileMap := make(map[rune]int)
	numTiles := 0
	for _, letter := range ld.letters {
		ct := ld.distribution[letter]
		tileMap[letter] = ct
		numTiles += ct
	}
	return &Bag{
		numTiles:           numTiles,
		initialNumTiles:    numTiles,
		uniqueLetters:      ld.Letters(),
		tileMap:            tileMap,
		letterDistribution: ld,
		randSource:         randSource,
	}
}

// drawTileAt removes the idx-th tile of the bag, counting through the
// letters in distribution order.
func (b *Bag) drawTileAt(idx int) Tile {
	counter := 0
	var drawn rune
	for _, letter := range b.uniqueLetters {
		counter += b.tileMap[letter]
		if counter > idx {
			drawn = letter
			break
		}
	}
	b.tileMap[drawn]--
	b.numTiles--
	return Tile{Letter: drawn, Value: b.letterDistribution.Score(drawn)}
}

// DrawAtMost draws at most n tiles from the bag, uniformly at random and
// without replacement. It draws fewer if there are fewer than n tiles left,
// and even draws no tiles at all :o
func (b *Bag) DrawAtMost(n int) Tiles {
	if n > b.numTiles {
		log.Debug().Int("requested", n).Int("remaining", b.numTiles).
			Msg("bag-short-draw")
		n = b.numTiles
	}
	if n <= 0 {
		return Tiles{}
	}
	drawn := make(Tiles, n)
	for i := 0; i < n; i++ {
		drawn[i] = b.drawTileAt(b.randSource.Intn(b.numTiles))
	}
	return drawn
}

func (b *Bag) TilesRemaining() int {
	return b.numTiles
}

func (b *Bag) InitialNumTiles() int {
	return b.initialNumTiles
}

// Peek returns the tiles left in the bag, in distribution order.
func (b *Bag) Peek() Tiles {
	ret := make(Tiles, 0, b.numTiles)
	for _, letter := range b.uniqueLetters {
		t := Tile{Letter: letter, Value: b.letterDistribution.Score(letter)}
		for i := 0; i < b.tileMap[letter]; i++ {
			ret = append(ret, t)
		}
	}
	return ret
}

// CountOf returns how many copies of a letter are still in the bag.
func (b *Bag) CountOf(letter rune) int {
	return b.tileMap[letter]
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}
