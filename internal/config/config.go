// Package config resolves the engine's run-time configuration (spec §6,
// §10.7) from flags, environment variables, and an optional .env file,
// with the .env file loaded first so flags and explicit environment
// variables always win.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything a single Assembler.Build run needs, beyond the
// word corpus itself.
type Config struct {
	LanguageCode   string
	NumWords       int
	MaxPaths       int
	Workers        int
	StopWordOffset int
	MostFrequents  int
	MinLen         int
	MaxLen         int
	Seed           int64
	CorpusDir      string
	SavePath       string // empty means --save was not requested
}

// Default returns the spec §6 defaults: min_len=4, max_len=8.
func Default() Config {
	return Config{
		LanguageCode:   "fr",
		NumWords:       6,
		MaxPaths:       100,
		Workers:        4,
		StopWordOffset: 0,
		MostFrequents:  0,
		MinLen:         4,
		MaxLen:         8,
		CorpusDir:      "corpora",
	}
}

// LoadDotEnv loads a .env file from the working directory if present.
// Its absence is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// EnvOr returns the environment variable named key, or fallback if unset.
func EnvOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// EnvIntOr returns the environment variable named key parsed as an int,
// or fallback if unset or unparsable.
func EnvIntOr(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// EnvInt64Or returns the environment variable named key parsed as an
// int64, or fallback if unset or unparsable.
func EnvInt64Or(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.NumWords < 2 {
		return fmt.Errorf("config: num_words must be >= 2, got %d", c.NumWords)
	}
	if c.MinLen < 1 || c.MaxLen < c.MinLen {
		return fmt.Errorf("config: invalid length window [%d,%d]", c.MinLen, c.MaxLen)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxPaths < 1 {
		return fmt.Errorf("config: max_paths must be >= 1, got %d", c.MaxPaths)
	}
	return nil
}
