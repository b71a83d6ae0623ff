package game

import (
	"github.com/samber/lo"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/move"
	"github.com/domino14/krabbels/stats"
	"github.com/domino14/krabbels/tilemapping"
)

// TileView is a tile as a user sees it.
type TileView struct {
	Letter string `yaml:"letter"`
	Value  int    `yaml:"value"`
}

// BagEntry is one line of the bag's contents.
type BagEntry struct {
	Letter string  `yaml:"letter"`
	Count  int     `yaml:"count"`
	Value  int     `yaml:"value"`
	Odds   float64 `yaml:"odds"`
}

// CellView is everything a view needs to draw one square.
type CellView struct {
	Coord    board.Coord `yaml:"coord"`
	Kind     string      `yaml:"kind"`
	Label    string      `yaml:"label,omitempty"`
	Letter   string      `yaml:"letter,omitempty"`
	Value    int         `yaml:"value"`
	Occupied bool        `yaml:"occupied"`
	Header   bool        `yaml:"-"`
	Selected bool        `yaml:"selected,omitempty"`
}

// SessionView summarizes the scores of the valid moves in the session.
type SessionView struct {
	ValidMoves int     `yaml:"valid_moves"`
	Best       float64 `yaml:"best"`
	Average    float64 `yaml:"average"`
}

// ViewModel is a snapshot of a game for display. Nothing in it refers back
// to the game.
type ViewModel struct {
	BagSize      int          `yaml:"bag_size"`
	BagContents  []BagEntry   `yaml:"bag_contents"`
	BagMean      float64      `yaml:"bag_mean"`
	BagStdev     float64      `yaml:"bag_stdev"`
	Rack         []TileView   `yaml:"rack"`
	StartingRack string       `yaml:"starting_rack"`
	Cells        [][]CellView `yaml:"-"`
	Placed       []CellView   `yaml:"placed"`
	LastSelected *board.Coord `yaml:"last_selected,omitempty"`
	LastResult   *move.Result `yaml:"last_result,omitempty"`
	Session      SessionView  `yaml:"session"`
}

func tileView(t tilemapping.Tile) TileView {
	return TileView{Letter: string(t.UserVisible()), Value: t.Value}
}

// Render builds the view model for g. It does not change g.
func Render(g *Game) ViewModel {
	vm := ViewModel{
		BagSize:      g.bag.TilesRemaining(),
		StartingRack: g.startingRack.UserVisible(),
		LastResult:   g.lastResult.Copy(),
	}
	vm.BagMean, vm.BagStdev = stats.BagValue(g.bag)

	letters := lo.Filter(g.letterDistribution.Letters(), func(l rune, _ int) bool {
		return g.bag.CountOf(l) > 0
	})
	vm.BagContents = lo.Map(letters, func(l rune, _ int) BagEntry {
		t := tilemapping.Tile{Letter: l, Value: g.letterDistribution.Score(l)}
		return BagEntry{
			Letter: string(t.UserVisible()),
			Count:  g.bag.CountOf(l),
			Value:  t.Value,
			Odds:   stats.DrawOdds(g.bag, l, RackSize),
		}
	})
	vm.Rack = lo.Map(g.rack.TilesOn(), func(t tilemapping.Tile, _ int) TileView {
		return tileView(t)
	})

	if c, ok := g.LastSelected(); ok {
		vm.LastSelected = &c
	}

	dim := g.board.Dim()
	vm.Cells = make([][]CellView, dim)
	for row := 0; row < dim; row++ {
		vm.Cells[row] = make([]CellView, dim)
		for col := 0; col < dim; col++ {
			sq := g.board.SquareAt(board.Coord{Row: row, Col: col})
			cell := CellView{
				Coord:    sq.Coord(),
				Kind:     sq.Kind().String(),
				Label:    sq.Label(),
				Value:    board.EmptyValue,
				Header:   sq.Kind().IsHeader(),
				Selected: vm.LastSelected != nil && *vm.LastSelected == sq.Coord(),
			}
			if t, ok := sq.Tile(); ok {
				tv := tileView(t)
				cell.Letter = tv.Letter
				cell.Value = tv.Value
				cell.Occupied = true
				vm.Placed = append(vm.Placed, cell)
			}
			vm.Cells[row][col] = cell
		}
	}

	vm.Session = SessionView{
		ValidMoves: g.scores.Iterations(),
		Best:       g.scores.Max(),
		Average:    g.scores.Mean(),
	}
	return vm
}
