// Package corpus loads and validates the on-disk word-and-hint corpus
// described in spec §6, producing the domain.WordEntry values a WordPool
// is built from.
package corpus

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"crosswordlayout/internal/domain"
	"crosswordlayout/internal/languagepack"
)

// ErrCorpusLoad is returned when the corpus file is unreadable, not valid
// JSON, or does not match the expected schema.
var ErrCorpusLoad = errors.New("corpus: load failed")

// ErrUnsupportedLanguage is returned when the configured language code has
// no registered language pack.
var ErrUnsupportedLanguage = errors.New("corpus: unsupported language")

//go:embed schemas/corpus.schema.json
var schemaFS embed.FS

var schema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemaFS.ReadFile("schemas/corpus.schema.json")
	if err != nil {
		panic(fmt.Sprintf("corpus: failed to read embedded schema: %v", err))
	}
	if err := compiler.AddResource("corpus.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("corpus: failed to add schema resource: %v", err))
	}
	schema, err = compiler.Compile("corpus.schema.json")
	if err != nil {
		panic(fmt.Sprintf("corpus: failed to compile schema: %v", err))
	}
}

// rawEntry mirrors the on-disk corpus object shape before normalization.
type rawEntry struct {
	Word  string          `json:"word"`
	Lemma string          `json:"lemma"`
	Upos  string          `json:"upos"`
	Feats json.RawMessage `json:"feats"`
	Hint  []string        `json:"hint"`
}

// Load resolves languageCode through reg, reads that language's corpus
// file from baseDir, validates it against the corpus schema, and returns
// the normalized entries.
func Load(reg *languagepack.Registry, languageCode, baseDir string) ([]domain.WordEntry, error) {
	pack, ok := reg.Get(languageCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageCode)
	}

	path := filepath.Join(baseDir, pack.CorpusFile())
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorpusLoad, path, err)
	}

	return Parse(data, pack)
}

// Parse validates raw corpus JSON against the schema and converts it into
// normalized WordEntry values using pack's normalization rules.
func Parse(data []byte, pack languagepack.LanguagePack) ([]domain.WordEntry, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorpusLoad, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: schema validation: %v", ErrCorpusLoad, err)
	}

	var raws []rawEntry
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusLoad, err)
	}

	entries := make([]domain.WordEntry, 0, len(raws))
	for _, r := range raws {
		entries = append(entries, domain.WordEntry{
			Surface: pack.Normalize(r.Word),
			Lemma:   r.Lemma,
			Upos:    r.Upos,
			Feats:   parseFeats(r.Feats),
			Hints:   r.Hint,
		})
	}
	return entries, nil
}

// parseFeats accepts the corpus's string-or-list "feats" field, per §6.
func parseFeats(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	return nil
}
