package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/samber/lo"

	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/locale"
)

type BagPanel struct {
	view   *tview.TextView
	tuiApp *TUIApp
}

func NewBagPanel(tuiApp *TUIApp) *BagPanel {
	panel := &BagPanel{
		tuiApp: tuiApp,
	}
	panel.view = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	panel.view.SetBorder(true).SetTitle("Bag")
	return panel
}

func (bp *BagPanel) GetView() tview.Primitive {
	return bp.view
}

func (bp *BagPanel) Refresh() {
	g := bp.tuiApp.shell.GetGame()
	p := bp.tuiApp.shell.Printer()
	vm := game.Render(g)

	var sb strings.Builder
	if vm.BagSize == 0 {
		sb.WriteString(p.Sprintf(locale.MsgBagEmpty))
		bp.view.SetText(sb.String())
		return
	}
	sb.WriteString(fmt.Sprintf("[yellow]%s[-]\n\n", p.Sprintf(locale.MsgBagCount, vm.BagSize)))

	ld := g.LetterDistribution()
	for _, e := range vm.BagContents {
		color := "white"
		switch {
		case e.Letter == "?":
			color = "yellow"
		case ld.IsVowel([]rune(e.Letter)[0]):
			color = "lightblue"
		}
		sb.WriteString(fmt.Sprintf("[%s]%s[-]%s×%d ", color, e.Letter, subscript(e.Value), e.Count))
	}

	vowels := lo.SumBy(vm.BagContents, func(e game.BagEntry) int {
		if e.Letter != "?" && ld.IsVowel([]rune(e.Letter)[0]) {
			return e.Count
		}
		return 0
	})
	blanks := lo.SumBy(vm.BagContents, func(e game.BagEntry) int {
		if e.Letter == "?" {
			return e.Count
		}
		return 0
	})
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Vowels: [lightblue]%d[-]  Consonants: %d  Blanks: [yellow]%d[-]\n",
		vowels, vm.BagSize-vowels-blanks, blanks))
	sb.WriteString(p.Sprintf(locale.MsgBagValue, vm.BagMean, vm.BagStdev) + "\n\n")

	best := lo.MaxBy(vm.BagContents, func(a, b game.BagEntry) bool { return a.Odds > b.Odds })
	sb.WriteString(p.Sprintf(locale.MsgDrawOdds, []rune(best.Letter)[0], best.Odds*100))
	bp.view.SetText(sb.String())
}
