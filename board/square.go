package board

import (
	"fmt"
	"os"
	"strconv"

	"github.com/domino14/krabbels/tilemapping"
)

var (
	ColorSupport = os.Getenv("KRABBELS_DISABLE_COLOR") != "on"
)

// A SquareKind is what a square is for: a header, or a playable square with
// (maybe) a bonus.
type SquareKind uint8

const (
	NoBonus SquareKind = iota
	// Bonus2LS is a double letter score
	Bonus2LS
	// Bonus3LS is a triple letter score
	Bonus3LS
	// Bonus2WS is a double word score
	Bonus2WS
	// Bonus3WS is a triple word score
	Bonus3WS
	// CenterStar is the middle square. It scores as a double word.
	CenterStar

	HeaderCorner
	HeaderTop
	HeaderLeft
)

const (
	CornerLabel = "krabs"
	StarLabel   = "★"
)

// EmptyValue marks a square with no tile. No real tile has a negative value.
const EmptyValue = -1

var kindLabels = map[SquareKind]string{
	NoBonus:    "",
	Bonus2LS:   "LD",
	Bonus3LS:   "LT",
	Bonus2WS:   "MD",
	Bonus3WS:   "MT",
	CenterStar: StarLabel,
}

func (k SquareKind) IsHeader() bool {
	return k == HeaderCorner || k == HeaderTop || k == HeaderLeft
}

// LetterMultiplier is what a tile's value is multiplied by on this square.
func (k SquareKind) LetterMultiplier() int {
	switch k {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier is what the whole move is multiplied by when a tile is
// placed on this square.
func (k SquareKind) WordMultiplier() int {
	switch k {
	case Bonus2WS, CenterStar:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

func (k SquareKind) String() string {
	switch k {
	case NoBonus:
		return "normal"
	case Bonus2LS:
		return "double-letter"
	case Bonus3LS:
		return "triple-letter"
	case Bonus2WS:
		return "double-word"
	case Bonus3WS:
		return "triple-word"
	case CenterStar:
		return "center"
	case HeaderCorner:
		return "header-corner"
	case HeaderTop:
		return "header-top"
	case HeaderLeft:
		return "header-left"
	}
	return "unknown"
}

// A Square is a single square in a game board. Its coordinate, kind and
// label never change after the board is built; only the tile does.
type Square struct {
	coord Coord
	kind  SquareKind
	label string
	tile  tilemapping.Tile
}

func newSquare(c Coord, kind SquareKind) *Square {
	s := &Square{
		coord: c,
		kind:  kind,
		tile:  tilemapping.Tile{Value: EmptyValue},
	}
	switch kind {
	case HeaderCorner:
		s.label = CornerLabel
	case HeaderTop:
		s.label = strconv.Itoa(c.Col)
	case HeaderLeft:
		s.label = string(RowLabel(c.Row))
	default:
		s.label = kindLabels[kind]
	}
	return s
}

func (s Square) String() string {
	return fmt.Sprintf("<%v (%s) %v>", s.coord, s.kind, s.tile)
}

func (s *Square) Coord() Coord {
	return s.coord
}

func (s *Square) Kind() SquareKind {
	return s.kind
}

// Label is the display text for the square's kind: a premium label, a
// header index, or nothing.
func (s *Square) Label() string {
	return s.label
}

// Tile returns the tile on the square; ok is false if it is empty.
func (s *Square) Tile() (t tilemapping.Tile, ok bool) {
	if s.IsEmpty() {
		return tilemapping.Tile{}, false
	}
	return s.tile, true
}

func (s *Square) IsEmpty() bool {
	return s.tile.Value == EmptyValue
}

func (s *Square) setTile(t tilemapping.Tile) {
	s.tile = t
}

func (s *Square) clear() {
	s.tile = tilemapping.Tile{Value: EmptyValue}
}

func (k SquareKind) displayString() string {
	repr := kindLabels[k]
	if repr == "" {
		repr = "."
	}
	if !ColorSupport {
		return repr
	}
	switch k {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", repr)
	case Bonus2WS, CenterStar:
		return fmt.Sprintf("\033[35m%s\033[0m", repr)
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", repr)
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", repr)
	default:
		return repr
	}
}

// DisplayString is the two-column-wide text for this square on a
// terminal board.
func (s *Square) DisplayString() string {
	if t, ok := s.Tile(); ok {
		return fmt.Sprintf("%c ", t.UserVisible())
	}
	switch s.kind {
	case NoBonus:
		return ". "
	case CenterStar:
		// the star is one column wide
		return s.kind.displayString() + " "
	}
	return s.kind.displayString()
}
