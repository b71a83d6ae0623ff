package locale

import (
	"testing"

	"github.com/matryer/is"
	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	is := is.New(t)
	is.Equal(Tag(""), language.French)
	is.Equal(Tag("fr"), language.French)
	is.Equal(Tag("en"), language.English)
	is.Equal(Tag("xx-not-a-tag!"), language.French)
}

func TestSupported(t *testing.T) {
	is := is.New(t)
	for _, lang := range []string{"fr", "en", "fr-CA", "en-US"} {
		is.True(Supported(lang))
	}
	for _, lang := range []string{"", "xx", "de", "not a tag"} {
		is.True(!Supported(lang))
	}
}

func TestFrenchPrinter(t *testing.T) {
	is := is.New(t)
	p := NewPrinter("fr")
	is.Equal(p.Sprintf(MsgBagCount, 102), "102 lettres dans le sac.")
	is.Equal(p.Sprintf(MsgDraw), "Piocher des lettres")
	is.Equal(p.Sprintf(MsgSelected, "H8"), "Case sélectionnée: H8")
}

func TestEnglishPrinter(t *testing.T) {
	is := is.New(t)
	p := NewPrinter("en")
	is.Equal(p.Sprintf(MsgBagCount, 95), "95 tiles in the bag.")
	is.Equal(p.Sprintf(MsgValidMove, "QUIZ", 86), "Valid move: QUIZ for 86 points.")
}

func TestEveryMessageTranslated(t *testing.T) {
	is := is.New(t)
	for _, key := range []string{MsgBagCount, MsgBagEmpty, MsgSelected,
		MsgNoSelection, MsgDraw, MsgValidate, MsgNewGame, MsgQuit, MsgRack,
		MsgRackEmpty, MsgValidMove, MsgInvalidMove, MsgNotInRack,
		MsgNotAdjacent, MsgBingo, MsgNoTiles, MsgDrawOdds, MsgBagValue,
		MsgSessionScores, MsgNewSession} {
		_, ok := frenchMessages[key]
		is.True(ok)
	}
}
