// Package testhelpers has shared fixtures for the package tests.
package testhelpers

import (
	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/tilemapping"
)

// SeededRand returns a reproducible rand source for bag draws.
func SeededRand(seed string) tilemapping.RandSource {
	return tilemapping.SeededRandSource(seed)
}

// ScriptedRand hands out a fixed sequence of picks, each reduced modulo the
// range asked for. After the script runs out it keeps returning 0.
type ScriptedRand struct {
	Picks []int
	next  int
}

func (s *ScriptedRand) Intn(n int) int {
	if s.next >= len(s.Picks) {
		return 0
	}
	p := s.Picks[s.next] % n
	s.next++
	return p
}

// Tiles converts a user-visible string into tiles with their point values,
// panicking on letters that are not in the distribution.
func Tiles(s string) tilemapping.Tiles {
	tiles, err := tilemapping.KrabbelsLetterDistribution().ToTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// BoardWith builds a board with letters at H8-style coordinates, e.g.
// BoardWith("H8", "A", "H9", "T").
func BoardWith(coordsAndLetters ...string) *board.GameBoard {
	if len(coordsAndLetters)%2 != 0 {
		panic("BoardWith needs coordinate/letter pairs")
	}
	b := board.MakeBoard()
	for i := 0; i < len(coordsAndLetters); i += 2 {
		c, err := board.ParseCoord(coordsAndLetters[i])
		if err != nil {
			panic(err)
		}
		t := Tiles(coordsAndLetters[i+1])
		if len(t) != 1 {
			panic("BoardWith takes one letter per coordinate")
		}
		if err := b.Place(c, t[0]); err != nil {
			panic(err)
		}
	}
	return b
}
