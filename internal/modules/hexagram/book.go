package hexagram

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for reference book loading.
var (
	ErrBookNotFound = errors.New("hexagram book not found")
	ErrInvalidBook  = errors.New("invalid hexagram book")
)

// BookEntry is a full reference text for one hexagram.
type BookEntry struct {
	Entry `yaml:",inline"`
	Image string   `yaml:"image"`
	Lines []string `yaml:"lines"`
}

type bookDocument struct {
	Hexagrams []BookEntry `yaml:"hexagrams"`
}

// Book is a reference table read from an external YAML or JSON file.
// It is immutable once loaded.
type Book struct {
	path    string
	entries map[int]BookEntry
}

// LoadBook reads the reference book at path. The document is either a list of
// entries or a mapping with a "hexagrams" list. JSON is accepted as YAML.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBookNotFound, path)
		}
		return nil, fmt.Errorf("failed to read hexagram book %s: %w", path, err)
	}

	entries, err := parseBook(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBook, path, err)
	}

	book := &Book{path: path, entries: make(map[int]BookEntry, len(entries))}
	for _, e := range entries {
		if e.Number < 1 || e.Number > 64 {
			return nil, fmt.Errorf("%w: %s: hexagram number %d out of range", ErrInvalidBook, path, e.Number)
		}
		if _, dup := book.entries[e.Number]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate hexagram %d", ErrInvalidBook, path, e.Number)
		}
		book.entries[e.Number] = e
	}
	if len(book.entries) == 0 {
		return nil, fmt.Errorf("%w: %s: no hexagrams", ErrInvalidBook, path)
	}

	return book, nil
}

func parseBook(data []byte) ([]BookEntry, error) {
	var list []BookEntry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc bookDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Hexagrams, nil
}

// Path returns the file the book was loaded from.
func (b *Book) Path() string {
	return b.path
}

// Len returns the number of entries in the book.
func (b *Book) Len() int {
	return len(b.entries)
}

// Numbers returns the hexagram numbers present, ascending.
func (b *Book) Numbers() []int {
	nums := make([]int, 0, len(b.entries))
	for n := range b.entries {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Entry returns the full reference entry for number.
func (b *Book) Entry(number int) (BookEntry, bool) {
	e, ok := b.entries[number]
	return e, ok
}

// Lookup implements Table.
func (b *Book) Lookup(number int) (Entry, bool) {
	e, ok := b.entries[number]
	if !ok {
		return Entry{}, false
	}
	return e.Entry, true
}
