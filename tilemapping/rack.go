package tilemapping

import (
	"github.com/samber/lo"
)

// Rack is a player's hand. Tiles are consumed from the front as they are
// placed; the rack never lets the player pick a tile by letter.
type Rack struct {
	tiles Tiles
}

// NewRack creates a rack holding the given tiles in order.
func NewRack(tiles Tiles) *Rack {
	r := &Rack{}
	r.Set(tiles)
	return r
}

// RackFromString creates a rack from a user-visible string such as "AB?".
func RackFromString(rack string, ld *LetterDistribution) (*Rack, error) {
	tiles, err := ld.ToTiles(rack)
	if err != nil {
		return nil, err
	}
	return NewRack(tiles), nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.tiles.UserVisible()
}

// Set replaces the whole rack.
func (r *Rack) Set(tiles Tiles) {
	r.tiles = make(Tiles, len(tiles))
	copy(r.tiles, tiles)
}

// PopFront removes and returns the first tile. ok is false on an empty rack.
func (r *Rack) PopFront() (t Tile, ok bool) {
	if len(r.tiles) == 0 {
		return Tile{}, false
	}
	t = r.tiles[0]
	r.tiles = r.tiles[1:]
	return t, true
}

// TilesOn returns a copy of the rack's tiles, front first.
func (r *Rack) TilesOn() Tiles {
	ret := make(Tiles, len(r.tiles))
	copy(ret, r.tiles)
	return ret
}

func (r *Rack) Letters() []rune {
	return r.tiles.Letters()
}

// CountOf returns how many tiles with this letter are on the rack.
func (r *Rack) CountOf(letter rune) int {
	return lo.CountBy(r.tiles, func(t Tile) bool { return t.Letter == letter })
}

// ScoreOn returns the total point value of the tiles on this rack.
func (r *Rack) ScoreOn() int {
	return lo.SumBy(r.tiles, func(t Tile) int { return t.Value })
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Empty() bool {
	return len(r.tiles) == 0
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	return NewRack(r.tiles)
}
