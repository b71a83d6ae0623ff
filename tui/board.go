package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/game"
)

// BoardPanel shows the board as a table. Enter on the highlighted square or
// a mouse click on any square places the first rack tile on it.
type BoardPanel struct {
	view   *tview.Table
	tuiApp *TUIApp
}

func NewBoardPanel(tuiApp *TUIApp) *BoardPanel {
	panel := &BoardPanel{
		tuiApp: tuiApp,
	}
	panel.view = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, true).
		SetFixed(1, 1)
	panel.view.SetBorder(true).SetTitle("Board")
	// The table only fires this on Enter; mouse clicks go through each
	// cell's clicked func.
	panel.view.SetSelectedFunc(func(row, col int) {
		log.Debug().Int("row", row).Int("col", col).Msg("TUI: square selected")
		tuiApp.clickCell(row, col)
	})
	return panel
}

func (bp *BoardPanel) squareClicked(c board.Coord) {
	log.Debug().Str("square", c.String()).Msg("TUI: square clicked")
	bp.tuiApp.clickCell(c.Row, c.Col)
}

func (bp *BoardPanel) GetView() tview.Primitive {
	return bp.view
}

// boardCoord maps a table cell to a board coordinate. The table includes
// the header row and column, so the two line up.
func boardCoord(row, col int) board.Coord {
	return board.Coord{Row: row, Col: col}
}

func (bp *BoardPanel) Refresh() {
	vm := game.Render(bp.tuiApp.shell.GetGame())
	for row, cells := range vm.Cells {
		for col, cell := range cells {
			bp.view.SetCell(row, col, renderCell(cell, bp.squareClicked))
		}
	}
	if vm.LastSelected != nil {
		bp.view.Select(vm.LastSelected.Row, vm.LastSelected.Col)
	}
}

// renderCell builds a table cell for a square. Every cell is four
// characters wide so the columns line up. Clicking a playable square calls
// onClick with its coordinate.
func renderCell(cell game.CellView, onClick func(board.Coord)) *tview.TableCell {
	if cell.Header {
		tc := tview.NewTableCell(padCell(cell.Label)).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetAlign(tview.AlignCenter)
		return tc
	}
	clicked := func() bool {
		onClick(cell.Coord)
		return false
	}
	if cell.Occupied {
		return tview.NewTableCell(padCell(cell.Letter)).
			SetClickedFunc(clicked).
			SetTextColor(tcell.ColorBlack).
			SetBackgroundColor(tcell.ColorWhite).
			SetAttributes(tcell.AttrBold).
			SetAlign(tview.AlignCenter)
	}
	text := cell.Label
	if text == "" {
		text = "·"
	}
	tc := tview.NewTableCell(padCell(text)).
		SetAlign(tview.AlignCenter).
		SetClickedFunc(clicked)
	if bg, ok := bonusColors[cell.Kind]; ok {
		tc.SetTextColor(tcell.ColorWhite).SetBackgroundColor(bg)
	}
	return tc
}

var bonusColors = map[string]tcell.Color{
	board.Bonus3WS.String():   tcell.ColorRed,
	board.Bonus2WS.String():   tcell.ColorPurple,
	board.CenterStar.String(): tcell.ColorPurple,
	board.Bonus3LS.String():   tcell.ColorBlue,
	board.Bonus2LS.String():   tcell.ColorDarkCyan,
}

func padCell(s string) string {
	return " " + s + " "
}
