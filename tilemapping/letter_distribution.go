package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed data/krabbels.csv
var krabbelsDistributionCSV []byte

// LetterDistribution encodes the tile distribution for the game: how many
// of each letter go in a fresh bag and what each is worth.
type LetterDistribution struct {
	Name string
	// letters keeps the order the distribution was declared in. The bag
	// and all displays use this order.
	letters      []rune
	distribution map[rune]int
	scores       map[rune]int
	vowels       map[rune]bool
	numLetters   int
}

// ScanLetterDistribution reads a distribution from CSV rows of the form
// letter,quantity,value,vowel. The letter ? denotes the blank.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	ld := &LetterDistribution{
		distribution: map[rune]int{},
		scores:       map[rune]int{},
		vowels:       map[rune]bool{},
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		field := strings.TrimSpace(record[0])
		if utf8.RuneCountInString(field) != 1 {
			return nil, fmt.Errorf("bad letter %q in distribution", field)
		}
		letter, _ := utf8.DecodeRuneInString(field)
		letter = ToLetter(letter)
		if _, ok := ld.distribution[letter]; ok {
			return nil, fmt.Errorf("letter %q declared twice", field)
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if n < 0 || p < 0 {
			return nil, fmt.Errorf("negative quantity or value for %q", field)
		}
		ld.letters = append(ld.letters, letter)
		ld.distribution[letter] = n
		ld.scores[letter] = p
		ld.vowels[letter] = v == 1
		ld.numLetters += n
	}
	return ld, nil
}

var (
	krabbelsOnce sync.Once
	krabbelsDist *LetterDistribution
)

// KrabbelsLetterDistribution returns the canonical 102-tile distribution.
// The returned value is shared and must not be modified.
func KrabbelsLetterDistribution() *LetterDistribution {
	krabbelsOnce.Do(func() {
		ld, err := ScanLetterDistribution(bytes.NewReader(krabbelsDistributionCSV))
		if err != nil {
			panic("embedded letter distribution is malformed: " + err.Error())
		}
		ld.Name = "krabbels"
		krabbelsDist = ld
	})
	return krabbelsDist
}

// Score gives the point value of a letter; unknown letters score 0.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.scores[letter]
}

// Count returns how many of a letter a fresh bag holds.
func (ld *LetterDistribution) Count(letter rune) int {
	return ld.distribution[letter]
}

func (ld *LetterDistribution) IsVowel(letter rune) bool {
	return ld.vowels[letter]
}

// Letters returns the distinct letters in declaration order.
func (ld *LetterDistribution) Letters() []rune {
	ret := make([]rune, len(ld.letters))
	copy(ret, ld.letters)
	return ret
}

func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// TileFor returns the tile for a letter as typed by a user (? for blank).
func (ld *LetterDistribution) TileFor(r rune) (Tile, error) {
	letter := ToLetter(r)
	if _, ok := ld.distribution[letter]; !ok {
		return Tile{}, fmt.Errorf("letter %c is not in the %v distribution", r, ld.Name)
	}
	return Tile{Letter: letter, Value: ld.scores[letter]}, nil
}

// ToTiles converts a user-visible string such as "AB?E" into tiles.
func (ld *LetterDistribution) ToTiles(s string) (Tiles, error) {
	tiles := make(Tiles, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		t, err := ld.TileFor(r)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}
