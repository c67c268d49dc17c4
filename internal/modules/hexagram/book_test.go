package hexagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBook_JSONList(t *testing.T) {
	path := writeFile(t, "iching_db.json", `[
  {"number": 1, "name": "Das Schöpferische", "judgment": "Das Schöpferische wirkt erhabenes Gelingen, fördernd durch Beharrlichkeit.",
   "image": "Des Himmels Bewegung ist kraftvoll.", "lines": ["Verborgener Drache.", "Erscheinender Drache."]},
  {"number": 21, "name": "Das Durchbeißen", "judgment": "Das Durchbeißen hat Gelingen. Fördernd ist es, Gericht walten zu lassen."}
]`)

	book, err := LoadBook(path)
	require.NoError(t, err)

	assert.Equal(t, path, book.Path())
	assert.Equal(t, 2, book.Len())
	assert.Equal(t, []int{1, 21}, book.Numbers())

	entry, ok := book.Entry(1)
	require.True(t, ok)
	assert.Equal(t, "Des Himmels Bewegung ist kraftvoll.", entry.Image)
	assert.Len(t, entry.Lines, 2)

	short, ok := book.Lookup(21)
	require.True(t, ok)
	assert.Equal(t, "Das Durchbeißen", short.Name)

	_, ok = book.Lookup(2)
	assert.False(t, ok)
}

func TestLoadBook_YAMLDocument(t *testing.T) {
	path := writeFile(t, "hexagrams.yaml", `hexagrams:
  - number: 64
    name: Vor der Vollendung
    judgment: Vor der Vollendung. Gelingen.
    lines:
      - Er macht seinen Schwanz nass.
`)

	book, err := LoadBook(path)
	require.NoError(t, err)

	entry, ok := book.Entry(64)
	require.True(t, ok)
	assert.Equal(t, "Vor der Vollendung", entry.Name)
	assert.Equal(t, []string{"Er macht seinen Schwanz nass."}, entry.Lines)
}

func TestLoadBook_Missing(t *testing.T) {
	_, err := LoadBook(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestLoadBook_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"hexagrams": [`},
		{"empty", ``},
		{"out of range", `[{"number": 65, "name": "x"}]`},
		{"zero number", `[{"name": "x"}]`},
		{"duplicate", `[{"number": 3, "name": "a"}, {"number": 3, "name": "b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBook(writeFile(t, "book.json", tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBook)
		})
	}
}

func TestBook_UsableAsTable(t *testing.T) {
	path := writeFile(t, "book.json", `[{"number": 21, "name": "Durchbeißen", "judgment": "Gelingen"}]`)
	book, err := LoadBook(path)
	require.NoError(t, err)

	h := FromTrigrams(2, 4, book)
	assert.Equal(t, "Durchbeißen", h.Name)
	assert.Equal(t, "Gelingen", h.Judgment)
}
