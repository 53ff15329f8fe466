package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CHORDS_PATH", "")

	assert := assert.New(t)
	assert.Equal("8080", GetPort())
	assert.Equal([]string{"*"}, GetAllowedOrigins())
	assert.Equal("", GetChordsPath())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CHORDS_PATH", "/tmp/chords.yaml")

	assert := assert.New(t)
	assert.Equal("9000", GetPort())
	assert.Equal([]string{"http://a.test", "http://b.test"}, GetAllowedOrigins())
	assert.Equal("/tmp/chords.yaml", GetChordsPath())
}
