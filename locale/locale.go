// Package locale holds the user-facing strings of the game in every
// language it speaks. Messages are keyed by their English format string.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	MsgBagCount      = "%d tiles in the bag."
	MsgBagEmpty      = "The bag is empty."
	MsgSelected      = "Selected square: %v"
	MsgNoSelection   = "No square selected."
	MsgDraw          = "Draw tiles"
	MsgValidate      = "Validate"
	MsgNewGame       = "New game"
	MsgQuit          = "Quit"
	MsgRack          = "Rack: %v"
	MsgRackEmpty     = "Your rack is empty."
	MsgValidMove     = "Valid move: %v for %d points."
	MsgInvalidMove   = "Invalid move: %v."
	MsgNotInRack     = "some letters are not on your rack"
	MsgNotAdjacent   = "the tiles are not adjacent"
	MsgBingo         = "All tiles used! +%d"
	MsgNoTiles       = "No tiles on the board."
	MsgDrawOdds      = "Chance of drawing %c: %.1f%%"
	MsgBagValue      = "Average tile value: %.2f (σ %.2f)"
	MsgSessionScores = "%d valid moves, best %.0f, average %.1f"
	MsgNewSession    = "New game started."
)

var Default = language.French

var supported = []language.Tag{language.French, language.English}

var frenchMessages = map[string]string{
	MsgBagCount:      "%d lettres dans le sac.",
	MsgBagEmpty:      "Le sac est vide.",
	MsgSelected:      "Case sélectionnée: %v",
	MsgNoSelection:   "Aucune case sélectionnée.",
	MsgDraw:          "Piocher des lettres",
	MsgValidate:      "Valider",
	MsgNewGame:       "Nouvelle partie",
	MsgQuit:          "Quitter",
	MsgRack:          "Chevalet: %v",
	MsgRackEmpty:     "Votre chevalet est vide.",
	MsgValidMove:     "Coup valide: %v pour %d points.",
	MsgInvalidMove:   "Coup invalide: %v.",
	MsgNotInRack:     "certaines lettres ne sont pas sur votre chevalet",
	MsgNotAdjacent:   "les lettres ne sont pas adjacentes",
	MsgBingo:         "Toutes les lettres posées! +%d",
	MsgNoTiles:       "Aucune lettre sur le plateau.",
	MsgDrawOdds:      "Chance de piocher %c: %.1f%%",
	MsgBagValue:      "Valeur moyenne d'une lettre: %.2f (σ %.2f)",
	MsgSessionScores: "%d coups valides, meilleur %.0f, moyenne %.1f",
	MsgNewSession:    "Nouvelle partie commencée.",
}

var cat catalog.Catalog

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range frenchMessages {
		if err := b.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
		// English strings are the keys themselves.
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
	cat = b
}

// Tag resolves a language name such as "fr", "en" or "fr-CA" to one of the
// supported languages, falling back to Default.
func Tag(lang string) language.Tag {
	if lang == "" {
		return Default
	}
	t, err := language.Parse(lang)
	if err != nil {
		return Default
	}
	matcher := language.NewMatcher(supported)
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Supported reports whether lang names a language with a catalog, such as
// "fr", "en" or "fr-CA".
func Supported(lang string) bool {
	t, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, conf := language.NewMatcher(supported).Match(t)
	return conf != language.No
}

// NewPrinter returns a printer for the given language.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang), message.Catalog(cat))
}
