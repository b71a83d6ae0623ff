package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRackFromString(t *testing.T) {
	ld := KrabbelsLetterDistribution()
	rack, err := RackFromString("KR?BS", ld)
	require.NoError(t, err)

	expected := Tiles{{'K', 10}, {'R', 1}, {BlankLetter, 0}, {'B', 3}, {'S', 1}}
	assert.Equal(t, expected, rack.TilesOn())
	assert.Equal(t, "KR?BS", rack.String())

	_, err = RackFromString("AÉ", ld)
	assert.Error(t, err)
}

func TestRackPopFront(t *testing.T) {
	is := is.New(t)
	rack, err := RackFromString("ABC", KrabbelsLetterDistribution())
	is.NoErr(err)

	for _, want := range "ABC" {
		tile, ok := rack.PopFront()
		is.True(ok)
		is.Equal(tile.Letter, want)
	}
	is.True(rack.Empty())
	_, ok := rack.PopFront()
	is.True(!ok)
}

func TestScoreOn(t *testing.T) {
	is := is.New(t)
	ld := KrabbelsLetterDistribution()
	type racktest struct {
		rack string
		pts  int
	}
	testCases := []racktest{
		{"ABCDEFG", 16},
		{"XYZ", 30},
		{"??", 0},
		{"?KWERTY", 33},
		{"RETINAO", 7},
	}
	for _, tc := range testCases {
		r, err := RackFromString(tc.rack, ld)
		is.NoErr(err)
		is.Equal(r.ScoreOn(), tc.pts)
	}
}

func TestRackCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	rack, err := RackFromString("EEL", KrabbelsLetterDistribution())
	is.NoErr(err)
	cp := rack.Copy()
	rack.PopFront()
	is.Equal(cp.NumTiles(), 3)
	is.Equal(rack.NumTiles(), 2)
	is.Equal(cp.CountOf('E'), 2)
	is.Equal(rack.CountOf('E'), 1)
}

func TestRackSetCopies(t *testing.T) {
	is := is.New(t)
	tiles := Tiles{{'A', 1}, {'B', 3}}
	rack := NewRack(tiles)
	tiles[0] = Tile{'Z', 10}
	is.Equal(rack.String(), "AB")
}
