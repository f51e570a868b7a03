package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswordlayout/internal/languagepack"
)

const fixtureJSON = `[
	{"word": "Anel", "lemma": "anel", "upos": "NOUN", "hint": ["ring, in Portuguese"]},
	{"word": "Animal", "feats": ["Number=Sing"], "hint": ["a living creature"]},
	{"word": "café", "feats": "Number=Sing", "hint": ["a hot drink"]}
]`

func TestLoadParsesNormalizesAndValidates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(fixtureJSON), 0o644))

	reg := languagepack.DefaultRegistry()
	entries, err := Load(reg, "fr", dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "anel", entries[0].Surface)
	assert.Equal(t, []string{"ring, in Portuguese"}, entries[0].Hints)
	assert.Equal(t, "animal", entries[1].Surface)
	assert.Equal(t, []string{"Number=Sing"}, entries[1].Feats)
	assert.Equal(t, "cafe", entries[2].Surface)
	assert.Equal(t, []string{"Number=Sing"}, entries[2].Feats)
}

func TestLoadRejectsUnsupportedLanguage(t *testing.T) {
	dir := t.TempDir()
	reg := languagepack.DefaultRegistry()

	_, err := Load(reg, "de", dir)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	reg := languagepack.DefaultRegistry()

	_, err := Load(reg, "fr", dir)
	assert.ErrorIs(t, err, ErrCorpusLoad)
}

func TestParseRejectsMissingWordField(t *testing.T) {
	reg := languagepack.DefaultRegistry()
	fr, _ := reg.Get("fr")

	_, err := Parse([]byte(`[{"hint": ["no word field"]}]`), fr)
	assert.ErrorIs(t, err, ErrCorpusLoad)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	reg := languagepack.DefaultRegistry()
	fr, _ := reg.Get("fr")

	_, err := Parse([]byte(`not json`), fr)
	assert.ErrorIs(t, err, ErrCorpusLoad)
}
