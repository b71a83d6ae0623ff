package tui

import (
	"github.com/rivo/tview"

	"github.com/domino14/krabbels/locale"
)

type ControlsPanel struct {
	view    *tview.Flex
	tuiApp  *TUIApp
	buttons map[string]*tview.Button
	help    *tview.TextView
}

func NewControlsPanel(tuiApp *TUIApp) *ControlsPanel {
	panel := &ControlsPanel{
		tuiApp:  tuiApp,
		buttons: make(map[string]*tview.Button),
	}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	buttonGrid := tview.NewFlex().SetDirection(tview.FlexColumn)

	cp.buttons["draw"] = tview.NewButton("").SetSelectedFunc(func() {
		cp.tuiApp.drawTiles()
	})
	cp.buttons["validate"] = tview.NewButton("").SetSelectedFunc(func() {
		cp.tuiApp.validate()
	})
	cp.buttons["new"] = tview.NewButton("").SetSelectedFunc(func() {
		cp.tuiApp.newGame()
	})
	cp.buttons["quit"] = tview.NewButton("").SetSelectedFunc(func() {
		cp.tuiApp.app.Stop()
	})
	for _, name := range []string{"draw", "validate", "new", "quit"} {
		buttonGrid.AddItem(cp.buttons[name], 0, 1, false)
	}

	cp.help = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	cp.help.SetText("Enter: place tile  g: go to square  l: log")

	cp.view = tview.NewFlex().SetDirection(tview.FlexRow)
	cp.view.SetBorder(true).SetTitle("Controls")
	cp.view.AddItem(buttonGrid, 1, 0, false)
	cp.view.AddItem(cp.help, 0, 1, false)
	cp.Refresh()
}

func (cp *ControlsPanel) GetView() tview.Primitive {
	return cp.view
}

// Refresh relabels the buttons, since the language can change during a
// session.
func (cp *ControlsPanel) Refresh() {
	p := cp.tuiApp.shell.Printer()
	cp.buttons["draw"].SetLabel(p.Sprintf(locale.MsgDraw) + " (d)")
	cp.buttons["validate"].SetLabel(p.Sprintf(locale.MsgValidate) + " (v)")
	cp.buttons["new"].SetLabel(p.Sprintf(locale.MsgNewGame) + " (n)")
	cp.buttons["quit"].SetLabel(p.Sprintf(locale.MsgQuit) + " (q)")
}
