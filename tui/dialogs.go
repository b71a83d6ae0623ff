package tui

import (
	"github.com/rivo/tview"

	"github.com/domino14/krabbels/board"
)

// showGotoDialog asks for a square by name (H8 or 8,8) and clicks it.
func (t *TUIApp) showGotoDialog() {
	form := tview.NewForm()
	form.AddInputField("Square", "", 8, nil, nil)
	form.AddButton("OK", func() {
		text := form.GetFormItem(0).(*tview.InputField).GetText()
		t.backToMain()
		c, err := board.ParseCoord(text)
		if err != nil {
			t.updateStatus("[red]" + tview.Escape(err.Error()) + "[-]")
			return
		}
		t.clickCell(c.Row, c.Col)
	})
	form.AddButton("Cancel", func() {
		t.backToMain()
	})
	form.SetBorder(true).SetTitle("Go to square").SetTitleAlign(tview.AlignLeft)
	t.app.SetRoot(form, true).SetFocus(form)
}
