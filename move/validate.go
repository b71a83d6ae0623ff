package move

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/tilemapping"
)

// AreAdjacent reports whether the coordinates form one contiguous line.
// After sorting by (row, col), every consecutive pair must sit next to
// each other in the same row or the same column. Only consecutive pairs
// are compared, so a run that turns a corner in sorted order can still
// pass; zero or one coordinate always passes.
func AreAdjacent(coords []board.Coord) bool {
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, func(a, b board.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		sameRow := prev.Row == cur.Row && cur.Col-prev.Col == 1
		sameCol := prev.Col == cur.Col && cur.Row-prev.Row == 1
		if !sameRow && !sameCol {
			return false
		}
	}
	return true
}

// ValidateAndScore evaluates every tile on the board as one move made from
// rack, which is the rack as it stood before any of the move's tiles were
// placed. bingoBonus is added when the move uses up the whole rack.
// Neither the board nor the rack is modified.
func ValidateAndScore(b *board.GameBoard, rack tilemapping.Tiles, bingoBonus int) *Result {
	res := &Result{LettersInRack: true}

	remaining := rack.Letters()
	var word strings.Builder
	letterSum := 0
	wordMultiplier := 1

	for _, sq := range b.PlacedSquares() {
		t, _ := sq.Tile()
		word.WriteRune(t.Letter)
		res.Placed = append(res.Placed, sq.Coord())

		if idx := slices.Index(remaining, t.Letter); idx >= 0 {
			remaining = slices.Delete(remaining, idx, idx+1)
		} else {
			res.LettersInRack = false
		}

		letterSum += t.Value * sq.Kind().LetterMultiplier()
		wordMultiplier *= sq.Kind().WordMultiplier()
	}

	res.FormedWord = word.String()
	// An empty move cannot have used up the rack.
	res.UsedAllRackTiles = len(res.Placed) > 0 && len(remaining) == 0
	res.CellsAdjacent = AreAdjacent(res.Placed)

	res.Score = letterSum * wordMultiplier
	if res.UsedAllRackTiles {
		res.Score += bingoBonus
	}
	res.IsValid = res.LettersInRack && res.CellsAdjacent

	log.Debug().Str("word", res.FormedWord).Int("score", res.Score).
		Bool("valid", res.IsValid).Msg("validated-move")
	return res
}
