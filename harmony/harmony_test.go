package harmony

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordex/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ivls(tokens ...string) []interval.Interval {
	var res []interval.Interval
	for _, tok := range tokens {
		res = append(res, interval.MustParse(tok))
	}
	return res
}

func TestHarmonizeNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C2", "E2", "G2", "B2"}, Harmonize(ivls("1P", "3M", "5P", "7M"), "C2"))
	assert.Equal([]string{"A", "C", "E"}, Harmonize(ivls("1P", "3m", "5P"), "a"))
	assert.Equal([]string{"C", "F", "Bb", "Eb"}, Harmonize(ivls("1P", "4P", "7m", "10m"), "C"))
}

func TestHarmonizeKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"G3", "C3", "E4"}, Harmonize(ivls("5P", "1P", "10M"), "C3"))
}

func TestHarmonizeWithoutTonic(t *testing.T) {
	assert.Equal(t, []string{"1P", "3M", "5P"}, Harmonize(ivls("1", "3", "5"), ""))
}

func TestHarmonizeEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(Harmonize(nil, "C"))
	assert.Nil(Harmonize(ivls("1P"), "not a note"))
}

func TestHarmonizer(t *testing.T) {
	triad := New(ivls("1P", "3M", "5P"))

	assert := assert.New(t)
	assert.Equal([]string{"D", "F#", "A"}, triad("D"))
	assert.Equal([]string{"1P", "3M", "5P"}, triad(""))
}

func TestParseList(t *testing.T) {
	got, err := ParseList("1 3 5 m7 m9")
	require.NoError(t, err)
	assert.Equal(t, ivls("1P", "3M", "5P", "7m", "9m"), got)

	got, err = ParseList("  C   Eb  G ")
	require.NoError(t, err)
	assert.Equal(t, ivls("1P", "3m", "5P"), got)
}

func TestParseListErrors(t *testing.T) {
	for _, source := range []string{"", "   ", "1P nope", "C E maj7"} {
		_, err := ParseList(source)
		assert.True(t, errors.Is(err, interval.ErrMalformed), "source %q", source)
	}
}
