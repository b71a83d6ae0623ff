package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestKrabbelsDistribution(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()
	is.Equal(ld.NumTotalTiles(), 102)
	is.Equal(len(ld.Letters()), 27)

	cases := []struct {
		letter rune
		count  int
		score  int
	}{
		{'A', 9, 1}, {'E', 15, 1}, {'D', 3, 2}, {'K', 1, 10}, {'L', 5, 1},
		{'M', 3, 2}, {'Q', 1, 8}, {'W', 1, 10}, {'Y', 1, 10}, {'Z', 1, 10},
		{BlankLetter, 2, 0},
	}
	for _, tc := range cases {
		is.Equal(ld.Count(tc.letter), tc.count)
		is.Equal(ld.Score(tc.letter), tc.score)
	}
	is.True(ld.IsVowel('E'))
	is.True(!ld.IsVowel('K'))
}

func TestScanLetterDistributionErrors(t *testing.T) {
	is := is.New(t)
	bad := []string{
		"AB,1,1,0\n",
		"A,x,1,0\n",
		"A,1,1\n",
		"A,1,1,0\nA,2,1,0\n",
		"A,-1,1,0\n",
	}
	for _, data := range bad {
		_, err := ScanLetterDistribution(strings.NewReader(data))
		is.True(err != nil)
	}
}

func TestToTiles(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()
	tiles, err := ld.ToTiles("K?S")
	is.NoErr(err)
	is.Equal(tiles, Tiles{{'K', 10}, {BlankLetter, 0}, {'S', 1}})
	is.Equal(tiles.UserVisible(), "K?S")
	is.Equal(tiles[1].String(), "?0")

	_, err = ld.ToTiles("k")
	is.True(err != nil)
}
