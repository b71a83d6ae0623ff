package shell

import (
	"golang.org/x/text/message"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/move"
	"github.com/domino14/krabbels/tilemapping"
)

// TUI accessor methods for ShellController

func (sc *ShellController) GetGame() *game.Game {
	return sc.game
}

func (sc *ShellController) Printer() *message.Printer {
	return sc.printer
}

// TUI command wrappers

func (sc *ShellController) DrawTiles() tilemapping.Tiles {
	cmd := &shellcmd{cmd: "draw", options: CmdOptions{}}
	sc.draw(cmd)
	return sc.game.Rack().TilesOn()
}

func (sc *ShellController) ClickCell(c board.Coord) error {
	return sc.game.ClickCell(c)
}

func (sc *ShellController) Validate() *move.Result {
	return sc.game.Validate()
}

func (sc *ShellController) NewGame() {
	cmd := &shellcmd{cmd: "new", options: CmdOptions{}}
	sc.newGame(cmd)
}

// ResultText describes the last validation in the shell's language.
func (sc *ShellController) ResultText(r *move.Result) string {
	return game.ResultText(sc.printer, r)
}
