package board

// The premium squares of the board. These never change; kindAt reads
// them once per square when a board is built.
var (
	center = Coord{8, 8}

	doubleLetterSquares = []Coord{
		{1, 4}, {1, 12}, {3, 7}, {3, 9}, {4, 1}, {4, 8}, {4, 15}, {7, 3},
		{7, 7}, {7, 9}, {7, 13}, {8, 4}, {8, 12}, {9, 3}, {9, 7}, {9, 9},
		{9, 13}, {12, 1}, {12, 8}, {12, 15}, {13, 7}, {13, 9}, {15, 4}, {15, 12},
	}
	tripleLetterSquares = []Coord{
		{2, 6}, {2, 10}, {6, 2}, {6, 6}, {6, 10}, {6, 14},
		{10, 2}, {10, 6}, {10, 10}, {10, 14}, {14, 6}, {14, 10},
	}
	doubleWordSquares = []Coord{
		{2, 2}, {2, 14}, {3, 3}, {3, 13}, {4, 4}, {4, 12}, {5, 5}, {5, 11},
		{11, 5}, {11, 11}, {12, 4}, {12, 12}, {13, 3}, {13, 13}, {14, 2}, {14, 14},
	}
	tripleWordSquares = []Coord{
		{1, 1}, {1, 8}, {1, 15}, {8, 1}, {8, 15}, {15, 1}, {15, 8}, {15, 15},
	}
)

var premiumKinds map[Coord]SquareKind

func init() {
	premiumKinds = make(map[Coord]SquareKind)
	for _, tbl := range []struct {
		coords []Coord
		kind   SquareKind
	}{
		{doubleLetterSquares, Bonus2LS},
		{tripleLetterSquares, Bonus3LS},
		{doubleWordSquares, Bonus2WS},
		{tripleWordSquares, Bonus3WS},
	} {
		for _, c := range tbl.coords {
			premiumKinds[c] = tbl.kind
		}
	}
	premiumKinds[center] = CenterStar
}

func kindAt(c Coord) SquareKind {
	switch {
	case c.Row == 0 && c.Col == 0:
		return HeaderCorner
	case c.Row == 0:
		return HeaderTop
	case c.Col == 0:
		return HeaderLeft
	}
	if k, ok := premiumKinds[c]; ok {
		return k
	}
	return NoBonus
}
