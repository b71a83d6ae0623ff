package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/locale"
	"github.com/domino14/krabbels/tilemapping"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	ErrUnknownCommand    = errors.New("unknown command")
)

type ShellController struct {
	l      *readline.Instance
	writer io.Writer

	config  *config.Config
	game    *game.Game
	printer *message.Printer
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates an interactive shell reading from the
// terminal.
func NewShellController(cfg *config.Config) *ShellController {
	sc := NewShellControllerWithWriter(cfg, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mkrabbels>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.writer = l.Stderr()
	return sc
}

// NewShellControllerWithWriter creates a shell without a terminal; command
// output goes to w. A nil writer discards output.
func NewShellControllerWithWriter(cfg *config.Config, w io.Writer) *ShellController {
	if w == nil {
		w = io.Discard
	}
	sc := &ShellController{
		writer:  w,
		config:  cfg,
		printer: locale.NewPrinter(cfg.GetString(config.ConfigLanguage)),
	}
	sc.game = game.NewGame(sc.randSource())
	return sc
}

func (sc *ShellController) randSource() tilemapping.RandSource {
	seed := sc.config.GetString(config.ConfigRandSeed)
	if seed == "" {
		return nil
	}
	log.Info().Str("seed", seed).Msg("using-seeded-bag")
	return tilemapping.SeededRandSource(seed)
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.writer)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments,
// and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	var args []string
	options := CmdOptions{}

	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{
		cmd:     fields[0],
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "draw", "d":
		return sc.draw(cmd)
	case "click", "place", "c":
		return sc.click(cmd)
	case "validate", "v":
		return sc.validate(cmd)
	case "board", "show", "s":
		return sc.show(cmd)
	case "rack", "r":
		return sc.rack(cmd)
	case "bag":
		return sc.bag(cmd)
	case "state":
		return sc.state(cmd)
	case "new", "n":
		return sc.newGame(cmd)
	case "set":
		return sc.set(cmd)
	case "help", "h":
		return sc.help(cmd)
	default:
		log.Info().Str("cmd", cmd.cmd).Msg("command-not-found")
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.cmd)
	}
}

// Execute runs one or more commands separated by semicolons, without
// reading from the terminal.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, c := range strings.Split(line, ";") {
		if sc.dispatch(sig, strings.TrimSpace(c)) {
			return
		}
	}
}

// dispatch runs a single line and reports whether the shell should quit.
func (sc *ShellController) dispatch(sig chan os.Signal, line string) bool {
	if line == "exit" || line == "bye" {
		sig <- syscall.SIGINT
		return true
	}
	resp, err := sc.handle(line)
	if err != nil {
		if !errors.Is(err, errNoData) {
			sc.showError(err)
		}
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.game.ToDisplayText(sc.printer))
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.dispatch(sig, strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func setDebug(on bool) {
	if on {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell-cleanup")
}
