package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/krabbels/config"
)

// ShellCompleter provides autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"draw", "click", "place", "validate", "board", "show", "rack", "bag",
	"state", "new", "set", "help", "exit",
}

var settingNames = []string{
	config.ConfigDebug, config.ConfigLanguage, config.ConfigRandSeed,
}

var helpTopics = []string{"click", "draw", "set", "validate"}

// Do implements the readline.AutoCompleter interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		// Only the first argument is completed.
		argIdx := len(fields) - 1
		if endsWithSpace {
			argIdx = len(fields)
		}
		if argIdx == 1 {
			switch fields[0] {
			case "set":
				completions = settingNames
			case "help", "h":
				completions = helpTopics
			}
		}
		if argIdx == 2 && fields[0] == "set" {
			switch fields[1] {
			case config.ConfigLanguage:
				completions = []string{"fr", "en"}
			case config.ConfigDebug:
				completions = []string{"true", "false"}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
