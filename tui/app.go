package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/locale"
	"github.com/domino14/krabbels/shell"
)

type TUIApp struct {
	app        *tview.Application
	shell      *shell.ShellController
	layout     *tview.Flex
	boardPanel *BoardPanel
	rackPanel  *RackPanel
	bagPanel   *BagPanel
	controls   *ControlsPanel
	statusBar  *tview.TextView
	logCapture *LogCapture
}

func NewTUIApp(cfg *config.Config) *TUIApp {
	app := tview.NewApplication()
	app.EnableMouse(true)

	tuiApp := &TUIApp{
		app: app,
	}
	tuiApp.initLogging(cfg.GetBool(config.ConfigDebug))

	// Output of shell commands is not shown; the panels render the game.
	tuiApp.shell = shell.NewShellControllerWithWriter(cfg, nil)

	tuiApp.setupLayout()
	tuiApp.setupKeyBindings()
	return tuiApp
}

func (t *TUIApp) setupLayout() {
	t.boardPanel = NewBoardPanel(t)
	t.rackPanel = NewRackPanel(t)
	t.bagPanel = NewBagPanel(t)
	t.controls = NewControlsPanel(t)
	t.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	t.statusBar.SetBorder(true).SetTitle("Status")

	leftPanel := tview.NewFlex().SetDirection(tview.FlexRow)
	leftPanel.AddItem(t.boardPanel.GetView(), 0, 1, true)
	leftPanel.AddItem(t.rackPanel.GetView(), 5, 0, false)

	rightPanel := tview.NewFlex().SetDirection(tview.FlexRow)
	rightPanel.AddItem(t.bagPanel.GetView(), 0, 1, false)
	rightPanel.AddItem(t.controls.GetView(), 7, 0, false)

	mainLayout := tview.NewFlex().SetDirection(tview.FlexColumn)
	mainLayout.AddItem(leftPanel, 0, 2, true)
	mainLayout.AddItem(rightPanel, 0, 1, false)

	t.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	t.layout.AddItem(mainLayout, 0, 1, true)
	t.layout.AddItem(t.statusBar, 3, 0, false)
}

func (t *TUIApp) setupKeyBindings() {
	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if _, ok := t.app.GetFocus().(*tview.InputField); ok {
			return event
		}
		switch event.Rune() {
		case 'q', 'Q':
			t.app.Stop()
			return nil
		case 'd':
			t.drawTiles()
			return nil
		case 'v':
			t.validate()
			return nil
		case 'n':
			t.newGame()
			return nil
		case 'l':
			t.showLogViewer()
			return nil
		case 'g':
			t.showGotoDialog()
			return nil
		}
		return event
	})
}

func (t *TUIApp) Run() error {
	t.refresh()
	t.updateStatus(t.shell.Printer().Sprintf(locale.MsgNoSelection))
	return t.app.SetRoot(t.layout, true).SetFocus(t.boardPanel.GetView()).Run()
}

func (t *TUIApp) Cleanup() {
	if t.shell != nil {
		t.shell.Cleanup()
	}
}

func (t *TUIApp) updateStatus(message string) {
	t.statusBar.SetText(message)
}

func (t *TUIApp) GetShell() *shell.ShellController {
	return t.shell
}

func (t *TUIApp) GetApp() *tview.Application {
	return t.app
}

func (t *TUIApp) backToMain() {
	t.app.SetRoot(t.layout, true).SetFocus(t.boardPanel.GetView())
}

// Game intents. Each one runs on the tview event loop, so they never
// overlap.

func (t *TUIApp) drawTiles() {
	drawn := t.shell.DrawTiles()
	log.Debug().Str("rack", drawn.UserVisible()).Msg("TUI: drew tiles")
	t.updateStatus(t.bagCountText())
	t.refresh()
}

func (t *TUIApp) clickCell(row, col int) {
	p := t.shell.Printer()
	c := boardCoord(row, col)
	if err := t.shell.ClickCell(c); err != nil {
		t.updateStatus("[red]" + err.Error() + "[-]")
		return
	}
	t.updateStatus(p.Sprintf(locale.MsgSelected, c))
	t.refresh()
}

func (t *TUIApp) validate() {
	res := t.shell.Validate()
	color := "green"
	if !res.IsValid {
		color = "red"
	}
	t.updateStatus("[" + color + "]" + tview.Escape(t.shell.ResultText(res)) + "[-]")
	t.refresh()
}

func (t *TUIApp) newGame() {
	t.shell.NewGame()
	t.updateStatus(t.shell.Printer().Sprintf(locale.MsgNewSession))
	t.refresh()
}

func (t *TUIApp) bagCountText() string {
	p := t.shell.Printer()
	n := t.shell.GetGame().Bag().TilesRemaining()
	if n == 0 {
		return p.Sprintf(locale.MsgBagEmpty)
	}
	return p.Sprintf(locale.MsgBagCount, n)
}

func (t *TUIApp) refresh() {
	t.boardPanel.Refresh()
	t.rackPanel.Refresh()
	t.bagPanel.Refresh()
	t.controls.Refresh()
}
