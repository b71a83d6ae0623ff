package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"github.com/domino14/krabbels/locale"
	"github.com/domino14/krabbels/move"
)

const bagColCount = 20

func splitSubN(s string, n int) []string {
	runes := []rune(s)
	subs := []string{}
	for len(runes) > n {
		subs = append(subs, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		subs = append(subs, string(runes))
	}
	return subs
}

// addText writes text to the right of the given row, wrapping onto the
// rows below it.
func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board, with the rack, bag and last result beside it.
func (g *Game) ToDisplayText(p *message.Printer) string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1

	if g.rack.Empty() {
		addText(bts, vpadding, hpadding, p.Sprintf(locale.MsgRackEmpty))
	} else {
		addText(bts, vpadding, hpadding, p.Sprintf(locale.MsgRack, g.rack.String()))
	}
	if c, ok := g.LastSelected(); ok {
		addText(bts, vpadding+1, hpadding, p.Sprintf(locale.MsgSelected, c))
	} else {
		addText(bts, vpadding+1, hpadding, p.Sprintf(locale.MsgNoSelection))
	}
	if g.lastResult != nil {
		addText(bts, vpadding+2, hpadding, ResultText(p, g.lastResult))
	}

	if g.bag.TilesRemaining() == 0 {
		addText(bts, vpadding+4, hpadding, p.Sprintf(locale.MsgBagEmpty))
		return strings.Join(bts, "\n")
	}
	addText(bts, vpadding+4, hpadding, p.Sprintf(locale.MsgBagCount, g.bag.TilesRemaining()))
	inbag := g.bag.Peek().UserVisible()
	row := vpadding + 6
	for _, chunk := range splitSubN(inbag, bagColCount) {
		addText(bts, row, hpadding, strings.Join(strings.Split(chunk, ""), " "))
		row++
	}
	return strings.Join(bts, "\n")
}

// ResultText describes a validation result in one line.
func ResultText(p *message.Printer, r *move.Result) string {
	if len(r.Placed) == 0 {
		return p.Sprintf(locale.MsgNoTiles)
	}
	if !r.IsValid {
		reasons := []string{}
		if !r.LettersInRack {
			reasons = append(reasons, p.Sprintf(locale.MsgNotInRack))
		}
		if !r.CellsAdjacent {
			reasons = append(reasons, p.Sprintf(locale.MsgNotAdjacent))
		}
		return p.Sprintf(locale.MsgInvalidMove, strings.Join(reasons, "; "))
	}
	text := p.Sprintf(locale.MsgValidMove, fmt.Sprintf("%q", r.FormedWord), r.Score)
	if r.UsedAllRackTiles {
		text += " " + p.Sprintf(locale.MsgBingo, ScrabbleBonus)
	}
	return text
}
