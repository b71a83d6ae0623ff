// Package game holds the state of a krabbels session and the intents that
// change it: drawing a rack, clicking a square, and validating the move.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/move"
	"github.com/domino14/krabbels/stats"
	"github.com/domino14/krabbels/tilemapping"
)

const (
	// RackSize is how many tiles a draw tries to put on the rack.
	RackSize = 7
	// ScrabbleBonus is added to a move that uses every tile of its rack.
	ScrabbleBonus = 50
)

// Game is the whole state of a session. It is not safe for concurrent use;
// a view should dispatch one intent at a time.
type Game struct {
	letterDistribution *tilemapping.LetterDistribution
	randSource         tilemapping.RandSource

	bag   *tilemapping.Bag
	rack  *tilemapping.Rack
	board *board.GameBoard
	// startingRack is the rack as it stood right after the last draw,
	// before any of its tiles were placed. Moves are validated against it.
	startingRack tilemapping.Tiles

	lastSelected *board.Coord
	lastResult   *move.Result
	// resultHash fingerprints the state lastResult was computed from.
	resultHash uint64

	// scores spans every game of the session.
	scores *stats.Statistic
}

// NewGame starts a session with a full bag, an empty rack and an empty
// board. A nil randSource means unseeded production randomness.
func NewGame(randSource tilemapping.RandSource) *Game {
	if randSource == nil {
		randSource = tilemapping.DefaultRandSource()
	}
	g := &Game{
		letterDistribution: tilemapping.KrabbelsLetterDistribution(),
		randSource:         randSource,
		scores:             &stats.Statistic{},
	}
	g.Reset()
	return g
}

// Reset starts a new game in the same session: new bag, empty rack and
// board. Session score statistics are kept.
func (g *Game) Reset() {
	g.bag = tilemapping.NewBag(g.letterDistribution, g.randSource)
	g.rack = tilemapping.NewRack(nil)
	g.board = board.MakeBoard()
	g.startingRack = tilemapping.Tiles{}
	g.lastSelected = nil
	g.lastResult = nil
	g.resultHash = 0
	log.Debug().Int("bag", g.bag.TilesRemaining()).Msg("new-game")
}

// DrawTiles replaces the rack with up to RackSize tiles from the bag. The
// old rack's tiles are discarded, not returned to the bag.
func (g *Game) DrawTiles() {
	drawn := g.bag.DrawAtMost(RackSize)
	g.rack.Set(drawn)
	g.startingRack = g.rack.TilesOn()
	log.Debug().Str("rack", drawn.UserVisible()).
		Int("bag", g.bag.TilesRemaining()).Msg("drew-tiles")
}

// ClickCell puts the front tile of the rack on the square at c, replacing
// whatever was there. With an empty rack the square is cleared instead.
// Header squares and coordinates off the board are rejected and leave the
// game untouched.
func (g *Game) ClickCell(c board.Coord) error {
	if !c.Playable() {
		log.Warn().Interface("coord", c).Msg("click-unplayable-square")
		return fmt.Errorf("click %v: %w", c, board.ErrNotPlayable)
	}
	var err error
	if t, ok := g.rack.PopFront(); ok {
		err = g.board.Place(c, t)
	} else {
		err = g.board.Clear(c)
	}
	if err != nil {
		return err
	}
	g.lastSelected = &c
	return nil
}

// Validate checks and scores every tile on the board against the starting
// rack, and remembers the result. Calling it again on an unchanged game
// returns an equal result. Each call returns a fresh copy; changing it
// does not change the remembered result.
func (g *Game) Validate() *move.Result {
	h := g.StateHash()
	if g.lastResult != nil && h == g.resultHash {
		return g.lastResult.Copy()
	}
	res := move.ValidateAndScore(g.board, g.startingRack, ScrabbleBonus)
	if res.IsValid && len(res.Placed) > 0 {
		g.scores.Push(float64(res.Score))
	}
	g.lastResult = res
	g.resultHash = h
	log.Info().Str("move", res.ShortDescription()).Bool("valid", res.IsValid).
		Msg("validate")
	return res.Copy()
}

// StateHash fingerprints everything a validation depends on: the tiles on
// the board and the starting rack.
func (g *Game) StateHash() uint64 {
	var sb strings.Builder
	for _, sq := range g.board.PlacedSquares() {
		t, _ := sq.Tile()
		c := sq.Coord()
		sb.WriteString(strconv.Itoa(c.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.Col))
		sb.WriteRune(t.Letter)
		sb.WriteString(strconv.Itoa(t.Value))
		sb.WriteByte(';')
	}
	sb.WriteByte('|')
	for _, t := range g.startingRack {
		sb.WriteRune(t.Letter)
		sb.WriteString(strconv.Itoa(t.Value))
	}
	return xxhash.Sum64String(sb.String())
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Rack() *tilemapping.Rack {
	return g.rack
}

// StartingRack is the rack as drawn, before any placements.
func (g *Game) StartingRack() tilemapping.Tiles {
	return append(tilemapping.Tiles{}, g.startingRack...)
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

// LastSelected returns the last square clicked, if any.
func (g *Game) LastSelected() (board.Coord, bool) {
	if g.lastSelected == nil {
		return board.Coord{}, false
	}
	return *g.lastSelected, true
}

// LastResult is the result of the most recent Validate, or nil.
func (g *Game) LastResult() *move.Result {
	return g.lastResult.Copy()
}

func (g *Game) Scores() *stats.Statistic {
	return g.scores
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.letterDistribution
}
