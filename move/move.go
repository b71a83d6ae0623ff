// Package move validates and scores the tiles currently placed on a board.
package move

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/krabbels/board"
)

// Result is the outcome of validating a move. It is recomputed every time
// and never stored on the board.
type Result struct {
	FormedWord       string        `json:"formed_word" yaml:"formed_word"`
	LettersInRack    bool          `json:"letters_in_rack" yaml:"letters_in_rack"`
	CellsAdjacent    bool          `json:"cells_adjacent" yaml:"cells_adjacent"`
	IsValid          bool          `json:"is_valid" yaml:"is_valid"`
	UsedAllRackTiles bool          `json:"used_all_rack_tiles" yaml:"used_all_rack_tiles"`
	Score            int           `json:"score" yaml:"score"`
	Placed           []board.Coord `json:"placed" yaml:"placed"`
}

// Copy returns a deep copy of r. A nil result copies to nil.
func (r *Result) Copy() *Result {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Placed = slices.Clone(r.Placed)
	return &cp
}

// String provides a string just for debugging purposes.
func (r *Result) String() string {
	return fmt.Sprintf("<word: %q rack: %v adjacent: %v valid: %v bingo: %v score: %v placed: %v>",
		r.FormedWord, r.LettersInRack, r.CellsAdjacent, r.IsValid,
		r.UsedAllRackTiles, r.Score, r.Placed)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (r *Result) ShortDescription() string {
	if len(r.Placed) == 0 {
		return "(no tiles)"
	}
	coords := make([]string, len(r.Placed))
	for i, c := range r.Placed {
		coords[i] = c.String()
	}
	return fmt.Sprintf("%v %v %d", strings.Join(coords, ","), r.FormedWord, r.Score)
}
