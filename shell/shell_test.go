package shell

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/domino14/krabbels/board"
	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/game"
	"github.com/domino14/krabbels/testhelpers"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"click H8",
			&shellcmd{"click", []string{"H8"}, CmdOptions{}},
			nil},
		{"set language en -save true",
			&shellcmd{"set", []string{"language", "en"},
				CmdOptions{"save": []string{"true"}}},
			nil},
		{"validate",
			&shellcmd{"validate", nil, CmdOptions{}},
			nil},
		{"set rand-seed 'two words'",
			&shellcmd{"set", []string{"rand-seed", "two words"}, CmdOptions{}},
			nil},
		{"set language en -save",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestCmdOptions(t *testing.T) {
	is := is.New(t)
	opts := CmdOptions{"n": {"3"}, "save": {"TRUE"}, "bad": {"x"}}
	is.Equal(opts.String("n"), "3")
	is.Equal(opts.String("missing"), "")
	n, err := opts.Int("n")
	is.NoErr(err)
	is.Equal(n, 3)
	_, err = opts.Int("missing")
	is.True(err != nil)
	d, err := opts.IntDefault("missing", 7)
	is.NoErr(err)
	is.Equal(d, 7)
	_, err = opts.IntDefault("bad", 7)
	is.True(err != nil)
	is.True(opts.Bool("save"))
	is.True(!opts.Bool("missing"))
}

func newTestShell(lang string) (*ShellController, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLanguage, lang)
	out := &bytes.Buffer{}
	sc := NewShellControllerWithWriter(cfg, out)
	sc.game = game.NewGame(&testhelpers.ScriptedRand{})
	return sc, out
}

func TestDrawClickValidate(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("en")

	resp, err := sc.handle("draw")
	is.NoErr(err)
	is.Equal(resp.message, "Rack: AAAAAAA\n95 tiles in the bag.")

	resp, err = sc.handle("click H8")
	is.NoErr(err)
	is.Equal(resp.message, "Selected square: H8\nRack: AAAAAA")

	resp, err = sc.handle("place 8,9")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Selected square: H9"))

	resp, err = sc.handle("validate")
	is.NoErr(err)
	// Star doubles the word.
	is.Equal(resp.message, `Valid move: "AA" for 4 points.`)
	is.Equal(sc.GetGame().Scores().Iterations(), 1)
}

func TestClickErrors(t *testing.T) {
	sc, _ := newTestShell("en")
	_, err := sc.handle("click")
	assert.Error(t, err)
	_, err = sc.handle("click Z99z")
	assert.Error(t, err)
	_, err = sc.handle("click 0,5")
	assert.True(t, errors.Is(err, board.ErrNotPlayable))
	_, ok := sc.GetGame().LastSelected()
	assert.False(t, ok)
}

func TestFrenchMessages(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("fr")
	resp, err := sc.handle("d")
	is.NoErr(err)
	is.Equal(resp.message, "Chevalet: AAAAAAA\n95 lettres dans le sac.")
	resp, err = sc.handle("c A1")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Case sélectionnée: A1"))
}

func TestUnknownCommand(t *testing.T) {
	sc, _ := newTestShell("en")
	_, err := sc.handle("frobnicate now")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestBagCommand(t *testing.T) {
	sc, _ := newTestShell("en")
	resp, err := sc.handle("bag")
	assert.NoError(t, err)
	lines := strings.Split(resp.message, "\n")
	assert.Equal(t, "102 tiles in the bag.", lines[0])
	// 27 letters, then the value summary.
	assert.Len(t, lines, 29)
	assert.True(t, strings.HasPrefix(lines[1], "  A x9"))
	assert.True(t, strings.HasPrefix(lines[27], "  ? x2"))
	assert.True(t, strings.HasPrefix(lines[28], "Average tile value:"))
}

func TestStateCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("en")
	_, err := sc.handle("draw")
	is.NoErr(err)
	_, err = sc.handle("click H8")
	is.NoErr(err)
	resp, err := sc.handle("state")
	is.NoErr(err)

	var vm map[string]any
	is.NoErr(yaml.Unmarshal([]byte(resp.message), &vm))
	is.Equal(vm["bag_size"], 95)
	is.Equal(vm["starting_rack"], "AAAAAAA")
	is.Equal(len(vm["placed"].([]any)), 1)
	is.True(vm["cells"] == nil)
}

func TestNewGameCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("en")
	_, err := sc.handle("draw")
	is.NoErr(err)
	resp, err := sc.handle("new")
	is.NoErr(err)
	is.Equal(resp.message, "New game started.")
	is.Equal(sc.GetGame().Bag().TilesRemaining(), 102)
}

func TestSetCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("en")
	resp, err := sc.handle("set language fr")
	is.NoErr(err)
	is.Equal(resp.message, "set language to fr")
	resp, err = sc.handle("rack")
	is.NoErr(err)
	is.Equal(resp.message, "Votre chevalet est vide.")

	resp, err = sc.handle("set")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "language: fr"))

	_, err = sc.handle("set cpu-profile /tmp/x")
	is.True(errors.Is(err, config.ErrUnknownSetting))
	_, err = sc.handle("set language")
	is.True(err != nil)

	// A bad language is refused and neither saved nor applied.
	_, err = sc.handle("set language xx -save true")
	is.True(errors.Is(err, config.ErrUnsupportedLanguage))
	is.Equal(sc.config.GetString(config.ConfigLanguage), "fr")
	resp, err = sc.handle("rack")
	is.NoErr(err)
	is.Equal(resp.message, "Votre chevalet est vide.")
}

func TestSetRandSeedStartsSeededGame(t *testing.T) {
	is := is.New(t)
	sc1, _ := newTestShell("en")
	sc2, _ := newTestShell("en")
	for _, sc := range []*ShellController{sc1, sc2} {
		_, err := sc.handle("set rand-seed abc")
		is.NoErr(err)
		_, err = sc.handle("draw")
		is.NoErr(err)
	}
	is.Equal(sc1.GetGame().Rack().String(), sc2.GetGame().Rack().String())
}

func TestHelp(t *testing.T) {
	sc, _ := newTestShell("en")
	resp, err := sc.handle("help")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.message, "Usage:"))
	resp, err = sc.handle("help click")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.message, "click <coord>"))
	resp, err = sc.handle("help nothing")
	assert.NoError(t, err)
	assert.Equal(t, "There is no help text for the topic nothing", resp.message)
}

func TestExecute(t *testing.T) {
	is := is.New(t)
	sc, out := newTestShell("en")
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "draw; click H8; bogus; validate; exit; draw")

	text := out.String()
	is.True(strings.Contains(text, "Rack: AAAAAAA"))
	is.True(strings.Contains(text, "Error: unknown command"))
	is.True(strings.Contains(text, `Valid move: "A" for 2 points.`))
	is.Equal(len(sig), 1)
	// Nothing after exit runs.
	is.Equal(sc.GetGame().Bag().TilesRemaining(), 95)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestShell("en")
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("va"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("lidate")})

	matches, n = c.Do([]rune("set la"), 6)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("nguage")})

	matches, _ = c.Do([]rune("set language "), 13)
	is.Equal(matches, [][]rune{[]rune("fr"), []rune("en")})

	matches, _ = c.Do([]rune("click H"), 7)
	is.Equal(len(matches), 0)
}
