package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/krabbels/tilemapping"
)

// ErrNotPlayable is returned when something tries to put a tile on (or take
// one off) a header square or a square outside the grid.
var ErrNotPlayable = errors.New("square is not playable")

// A GameBoard is the main board structure. It holds the header row and
// column as well as the BoardSize x BoardSize playable squares.
type GameBoard struct {
	squares     [][]*Square
	tilesPlayed int
}

// MakeBoard builds an empty board. Every square gets its kind and label
// here, once.
func MakeBoard() *GameBoard {
	dim := BoardSize + 1
	g := &GameBoard{squares: make([][]*Square, dim)}
	for row := 0; row < dim; row++ {
		g.squares[row] = make([]*Square, dim)
		for col := 0; col < dim; col++ {
			c := Coord{row, col}
			g.squares[row][col] = newSquare(c, kindAt(c))
		}
	}
	return g
}

// Dim is the number of rows (and columns) including the header.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// SquareAt returns the square at c, or nil if c is outside the grid.
func (g *GameBoard) SquareAt(c Coord) *Square {
	if !c.inGrid() {
		return nil
	}
	return g.squares[c.Row][c.Col]
}

// Place puts a tile on a playable square, replacing whatever was there.
func (g *GameBoard) Place(c Coord, t tilemapping.Tile) error {
	if !c.Playable() {
		log.Warn().Interface("coord", c).Msg("place-on-unplayable-square")
		return fmt.Errorf("cannot place %c at %v: %w", t.UserVisible(), c, ErrNotPlayable)
	}
	sq := g.squares[c.Row][c.Col]
	if sq.IsEmpty() {
		g.tilesPlayed++
	}
	sq.setTile(t)
	return nil
}

// Clear empties a playable square. Clearing an empty square is fine.
func (g *GameBoard) Clear(c Coord) error {
	if !c.Playable() {
		log.Warn().Interface("coord", c).Msg("clear-unplayable-square")
		return fmt.Errorf("cannot clear %v: %w", c, ErrNotPlayable)
	}
	sq := g.squares[c.Row][c.Col]
	if !sq.IsEmpty() {
		g.tilesPlayed--
	}
	sq.clear()
	return nil
}

// ClearAll takes every tile off the board.
func (g *GameBoard) ClearAll() {
	for _, row := range g.squares {
		for _, sq := range row {
			sq.clear()
		}
	}
	g.tilesPlayed = 0
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// PlacedSquares returns the occupied playable squares in row-major order.
func (g *GameBoard) PlacedSquares() []*Square {
	placed := make([]*Square, 0, g.tilesPlayed)
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if sq := g.squares[row][col]; !sq.IsEmpty() {
				placed = append(placed, sq)
			}
		}
	}
	return placed
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	n := MakeBoard()
	for row := range g.squares {
		for col, sq := range g.squares[row] {
			n.squares[row][col].tile = sq.tile
		}
	}
	n.tilesPlayed = g.tilesPlayed
	return n
}

// ToDisplayText renders the board for a terminal, headers included.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 1; col <= BoardSize; col++ {
		sb.WriteString(fmt.Sprintf("%-2d", col))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", BoardSize*2) + "\n")
	for row := 1; row <= BoardSize; row++ {
		sb.WriteString(fmt.Sprintf("%c |", RowLabel(row)))
		for col := 1; col <= BoardSize; col++ {
			sb.WriteString(g.squares[row][col].DisplayString())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", BoardSize*2) + "\n")
	return "\n" + sb.String()
}
