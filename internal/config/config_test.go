package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadLengthWindow(t *testing.T) {
	c := Default()
	c.MinLen = 8
	c.MaxLen = 4
	assert.Error(t, c.Validate())
}

func TestValidateRejectsTooFewWords(t *testing.T) {
	c := Default()
	c.NumWords = 1
	assert.Error(t, c.Validate())
}

func TestEnvOrFallsBackWhenUnset(t *testing.T) {
	os.Unsetenv("CROSSWORDLAYOUT_TEST_VAR")
	assert.Equal(t, "fallback", EnvOr("CROSSWORDLAYOUT_TEST_VAR", "fallback"))

	os.Setenv("CROSSWORDLAYOUT_TEST_VAR", "set")
	defer os.Unsetenv("CROSSWORDLAYOUT_TEST_VAR")
	assert.Equal(t, "set", EnvOr("CROSSWORDLAYOUT_TEST_VAR", "fallback"))
}

func TestEnvIntOrFallsBackOnUnparsable(t *testing.T) {
	os.Setenv("CROSSWORDLAYOUT_TEST_INT", "not-a-number")
	defer os.Unsetenv("CROSSWORDLAYOUT_TEST_INT")
	assert.Equal(t, 42, EnvIntOr("CROSSWORDLAYOUT_TEST_INT", 42))
}
