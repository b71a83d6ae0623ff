package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/locale"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	sc.game.DrawTiles()
	return msg(sc.rackText() + "\n" + sc.bagCountText()), nil
}

func (sc *ShellController) click(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: click <coord>, e.g. click H8")
	}
	c, err := board.ParseCoord(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.game.ClickCell(c); err != nil {
		return nil, err
	}
	return msg(sc.printer.Sprintf(locale.MsgSelected, c) + "\n" + sc.rackText()), nil
}

func (sc *ShellController) validate(cmd *shellcmd) (*Response, error) {
	res := sc.game.Validate()
	return msg(game.ResultText(sc.printer, res)), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText(sc.printer)), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	return msg(sc.rackText()), nil
}

func (sc *ShellController) rackText() string {
	if sc.game.Rack().Empty() {
		return sc.printer.Sprintf(locale.MsgRackEmpty)
	}
	return sc.printer.Sprintf(locale.MsgRack, sc.game.Rack().String())
}

func (sc *ShellController) bagCountText() string {
	n := sc.game.Bag().TilesRemaining()
	if n == 0 {
		return sc.printer.Sprintf(locale.MsgBagEmpty)
	}
	return sc.printer.Sprintf(locale.MsgBagCount, n)
}

// bag lists the bag's contents with point values and the odds of seeing
// each letter in the next draw.
func (sc *ShellController) bag(cmd *shellcmd) (*Response, error) {
	vm := game.Render(sc.game)
	var sb strings.Builder
	sb.WriteString(sc.bagCountText() + "\n")
	if vm.BagSize == 0 {
		return msg(sb.String()), nil
	}
	for _, e := range vm.BagContents {
		sb.WriteString(fmt.Sprintf("  %s x%-2d (%2d)  %5.1f%%\n", e.Letter, e.Count, e.Value, e.Odds*100))
	}
	sb.WriteString(sc.printer.Sprintf(locale.MsgBagValue, vm.BagMean, vm.BagStdev))
	return msg(sb.String()), nil
}

func (sc *ShellController) state(cmd *shellcmd) (*Response, error) {
	out, err := yaml.Marshal(game.Render(sc.game))
	if err != nil {
		return nil, err
	}
	return msg(string(out)), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game.Reset()
	return msg(sc.printer.Sprintf(locale.MsgNewSession)), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		var sb strings.Builder
		sb.WriteString("Settings:\n")
		for _, key := range []string{config.ConfigDebug, config.ConfigLanguage, config.ConfigRandSeed} {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, sc.config.Get(key)))
		}
		return msg(sb.String()), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <key> <value> [-save true]")
	}
	key, value := cmd.args[0], cmd.args[1]
	if err := sc.config.Put(key, value); err != nil {
		return nil, err
	}
	switch key {
	case config.ConfigLanguage:
		sc.printer = locale.NewPrinter(value)
	case config.ConfigDebug:
		setDebug(sc.config.GetBool(config.ConfigDebug))
	case config.ConfigRandSeed:
		// The seed only takes effect for a new game.
		sc.game = game.NewGame(sc.randSource())
	}
	log.Info().Str("key", key).Str("value", value).Msg("setting-changed")
	if cmd.options.Bool("save") {
		if err := sc.config.Write(); err != nil {
			return nil, fmt.Errorf("saving config: %w", err)
		}
	}
	return msg("set " + key + " to " + value), nil
}
