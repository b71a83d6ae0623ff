package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BoardSize is the number of playable rows (and columns).
const BoardSize = 15

var reLetterCoord, reNumericCoord *regexp.Regexp

func init() {
	reLetterCoord = regexp.MustCompile(`^(?P<row>[A-Za-z])(?P<col>[0-9]+)$`)
	reNumericCoord = regexp.MustCompile(`^(?P<row>[0-9]+)\s*,\s*(?P<col>[0-9]+)$`)
}

// A Coord addresses a square. Row 0 and column 0 are the header row and
// column; playable squares run from 1 to BoardSize in both directions.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Playable reports whether a tile can ever sit on this coordinate.
func (c Coord) Playable() bool {
	return c.Row >= 1 && c.Row <= BoardSize && c.Col >= 1 && c.Col <= BoardSize
}

func (c Coord) inGrid() bool {
	return c.Row >= 0 && c.Row <= BoardSize && c.Col >= 0 && c.Col <= BoardSize
}

// Less orders coordinates row first, then column.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String uses the board's own labels: the row letter, then the column
// number. (8,8) is H8. Header coordinates are printed numerically.
func (c Coord) String() string {
	if !c.Playable() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(RowLabel(c.Row)) + strconv.Itoa(c.Col)
}

// RowLabel is the letter shown in the left header for a playable row.
func RowLabel(row int) rune {
	return rune('A' + row - 1)
}

// ParseCoord parses H8-style coordinates (row letter, column number) as
// well as plain "row,col". It does not check that the coordinate is
// playable.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if m := reLetterCoord.FindStringSubmatch(s); len(m) == 3 {
		col, err := strconv.Atoi(m[2])
		if err != nil {
			return Coord{}, err
		}
		row := int(strings.ToUpper(m[1])[0]-'A') + 1
		return Coord{Row: row, Col: col}, nil
	}
	if m := reNumericCoord.FindStringSubmatch(s); len(m) == 3 {
		row, err := strconv.Atoi(m[1])
		if err != nil {
			return Coord{}, err
		}
		col, err := strconv.Atoi(m[2])
		if err != nil {
			return Coord{}, err
		}
		return Coord{Row: row, Col: col}, nil
	}
	return Coord{}, fmt.Errorf("cannot understand coordinate %q", s)
}
