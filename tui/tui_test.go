package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matryer/is"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/game"
)

func TestLogCaptureKeepsLastLines(t *testing.T) {
	is := is.New(t)
	lc := NewLogCapture(2)
	for _, line := range []string{"one\n", "two\n", "three\n"} {
		n, err := lc.Write([]byte(line))
		is.NoErr(err)
		is.Equal(n, len(line))
	}
	is.Equal(lc.GetMessages(), "two\nthree\n")
	lc.Clear()
	is.Equal(lc.GetMessages(), "")
}

func TestSubscript(t *testing.T) {
	is := is.New(t)
	is.Equal(subscript(0), "₀")
	is.Equal(subscript(10), "₁₀")
	is.Equal(subscript(board.EmptyValue), "")
}

func ignoreClick(board.Coord) {}

func TestRenderCell(t *testing.T) {
	is := is.New(t)
	header := renderCell(game.CellView{Label: "krabs", Header: true}, ignoreClick)
	is.Equal(header.Text, " krabs ")
	is.True(header.NotSelectable)
	is.True(header.Clicked == nil)

	tile := renderCell(game.CellView{Letter: "Q", Value: 8, Occupied: true}, ignoreClick)
	is.Equal(strings.TrimSpace(tile.Text), "Q")

	star := renderCell(game.CellView{Label: board.StarLabel, Kind: board.CenterStar.String()}, ignoreClick)
	is.Equal(strings.TrimSpace(star.Text), board.StarLabel)

	plain := renderCell(game.CellView{Kind: board.NoBonus.String()}, ignoreClick)
	is.Equal(strings.TrimSpace(plain.Text), "·")
}

func TestRenderCellClick(t *testing.T) {
	is := is.New(t)
	var got []board.Coord
	record := func(c board.Coord) { got = append(got, c) }

	empty := renderCell(game.CellView{Coord: board.Coord{Row: 8, Col: 8},
		Label: board.StarLabel, Kind: board.CenterStar.String()}, record)
	is.True(empty.Clicked != nil)
	is.True(!empty.Clicked()) // the table still moves its highlight

	occupied := renderCell(game.CellView{Coord: board.Coord{Row: 8, Col: 9},
		Letter: "A", Value: 1, Occupied: true}, record)
	is.True(!occupied.Clicked())

	is.Equal(got, []board.Coord{{Row: 8, Col: 8}, {Row: 8, Col: 9}})
}

func TestMouseClickPlacesTile(t *testing.T) {
	is := is.New(t)
	tuiApp := NewTUIApp(config.DefaultConfig())
	tuiApp.drawTiles()
	g := tuiApp.GetShell().GetGame()
	is.Equal(g.Rack().NumTiles(), 7)
	first := g.Rack().TilesOn()[0]

	cell := tuiApp.boardPanel.view.GetCell(8, 8)
	is.True(cell.Clicked != nil)
	cell.Clicked()

	placed, ok := g.Board().SquareAt(board.Coord{Row: 8, Col: 8}).Tile()
	is.True(ok)
	is.Equal(placed, first)
	is.Equal(g.Rack().NumTiles(), 6)
	last, ok := g.LastSelected()
	is.True(ok)
	is.Equal(last, board.Coord{Row: 8, Col: 8})

	// Header cells ignore clicks.
	is.True(tuiApp.boardPanel.view.GetCell(0, 8).Clicked == nil)
}

func TestBonusColors(t *testing.T) {
	is := is.New(t)
	is.Equal(bonusColors[board.CenterStar.String()], tcell.ColorPurple)
	is.Equal(bonusColors[board.Bonus3WS.String()], tcell.ColorRed)
	_, ok := bonusColors[board.NoBonus.String()]
	is.True(!ok)
}

func TestBoardCoordMatchesTable(t *testing.T) {
	is := is.New(t)
	is.Equal(boardCoord(8, 8), board.Coord{Row: 8, Col: 8})
	is.True(!boardCoord(0, 3).Playable())
}
