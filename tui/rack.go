package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/locale"
)

type RackPanel struct {
	view   *tview.TextView
	tuiApp *TUIApp
}

func NewRackPanel(tuiApp *TUIApp) *RackPanel {
	panel := &RackPanel{
		tuiApp: tuiApp,
	}
	panel.view = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	panel.view.SetBorder(true).SetTitle("Rack")
	return panel
}

func (rp *RackPanel) GetView() tview.Primitive {
	return rp.view
}

func (rp *RackPanel) Refresh() {
	p := rp.tuiApp.shell.Printer()
	vm := game.Render(rp.tuiApp.shell.GetGame())

	var sb strings.Builder
	if len(vm.Rack) == 0 {
		sb.WriteString("[red]" + p.Sprintf(locale.MsgRackEmpty) + "[-]")
	} else {
		for i, tile := range vm.Rack {
			if i > 0 {
				sb.WriteString(" ")
			}
			color := "white"
			if tile.Letter == "?" {
				color = "yellow"
			}
			sb.WriteString(fmt.Sprintf("[%s]%s[-]%s", color, tile.Letter, subscript(tile.Value)))
		}
	}
	sb.WriteString("\n\n" + p.Sprintf(locale.MsgSessionScores,
		vm.Session.ValidMoves, vm.Session.Best, vm.Session.Average))
	rp.view.SetText(sb.String())
}

var subscriptDigits = []rune("₀₁₂₃₄₅₆₇₈₉")

func subscript(n int) string {
	if n < 0 {
		return ""
	}
	digits := fmt.Sprint(n)
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteRune(subscriptDigits[d-'0'])
	}
	return sb.String()
}
