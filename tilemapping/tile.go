package tilemapping

import (
	"fmt"
	"strings"
)

const (
	// BlankLetter is the letter a blank tile carries while it sits in the
	// bag, on a rack, or on the board. Blanks are never assigned a letter.
	BlankLetter = ' '
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
)

// A Tile is a single letter tile with its point value. Tiles are values;
// two tiles with the same letter are interchangeable.
type Tile struct {
	Letter rune `json:"letter" yaml:"letter"`
	Value  int  `json:"value" yaml:"value"`
}

func (t Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// UserVisible returns the letter of the tile the way a user would type it.
func (t Tile) UserVisible() rune {
	if t.IsBlank() {
		return BlankToken
	}
	return t.Letter
}

func (t Tile) String() string {
	return fmt.Sprintf("%c%d", t.UserVisible(), t.Value)
}

// Tiles is an ordered run of tiles, e.g. the contents of a rack.
type Tiles []Tile

// UserVisible returns the tiles' letters as a single string.
func (ts Tiles) UserVisible() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteRune(t.UserVisible())
	}
	return sb.String()
}

// Letters returns just the letters of the tiles, in order.
func (ts Tiles) Letters() []rune {
	letters := make([]rune, len(ts))
	for i, t := range ts {
		letters[i] = t.Letter
	}
	return letters
}

// ToLetter converts user input into the letter stored on a tile.
func ToLetter(r rune) rune {
	if r == BlankToken {
		return BlankLetter
	}
	return r
}
