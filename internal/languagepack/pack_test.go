package languagepack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryHasFrenchAndEnglish(t *testing.T) {
	reg := DefaultRegistry()

	assert.ElementsMatch(t, []string{"fr", "en"}, reg.Available())

	fr, ok := reg.Get("fr")
	require.True(t, ok)
	assert.Equal(t, "fr.json", fr.CorpusFile())
	assert.Equal(t, "cote", fr.Normalize("côte"))

	_, ok = reg.Get("de")
	assert.False(t, ok)
}

func TestEnglishPackNormalizeStripsAccentsAndLowercases(t *testing.T) {
	en := NewEnglishPack()
	assert.Equal(t, "cafe", en.Normalize("Café"))
	assert.Equal(t, "en", en.Code())
	assert.Equal(t, "en.json", en.CorpusFile())
}
