package chord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/chordex/data"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaj7Intervals(t *testing.T) {
	assert.Equal(t, []string{"1P", "3M", "5P", "7M"}, Get("maj7", ""))
}

func TestMaj7WithTonicOctave(t *testing.T) {
	assert.Equal(t, []string{"C2", "E2", "G2", "B2"}, Get("maj7", "C2"))
}

func TestBuilderMatchesDirectCall(t *testing.T) {
	maj7 := NewBuilder("maj7")

	assert := assert.New(t)
	assert.Equal([]string{"C", "E", "G", "B"}, maj7("C"))
	for _, tonic := range []string{"C", "Eb3", "F#", ""} {
		assert.Equal(Get("maj7", tonic), maj7(tonic))
	}
}

func TestRawIntervals(t *testing.T) {
	assert.Equal(t, []string{"C", "E", "G", "Bb", "Db"}, Get("1 3 5 m7 m9", "C"))
	assert.Equal(t, []string{"1P", "3M", "5P", "7m", "9m"}, Get("1 3 5 m7 m9", ""))
}

func TestRawNotes(t *testing.T) {
	assert.Equal(t, []string{"1P", "3m", "5P"}, Get("A C E", ""))
	assert.Equal(t, []string{"D", "F", "A"}, Get("A C E", "D"))
}

func TestUnknownSourceIsEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Get("not-a-chord", "C"))
	assert.Empty(Get("not-a-chord", ""))
	assert.Empty(NewBuilder("not-a-chord")("C"))
}

func TestBadTonicIsEmpty(t *testing.T) {
	assert.Empty(t, Get("maj7", "H"))
}

func TestIntervalsReportsMalformedToken(t *testing.T) {
	_, err := Intervals("1P 3M nope")
	assert.True(t, errors.Is(err, interval.ErrMalformed))

	ivls, err := Intervals("Maj7")
	require.NoError(t, err)
	assert.Len(t, ivls, 4)
}

func TestFromName(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"CMaj7", []string{"C", "E", "G", "B"}},
		{"C7", []string{"C", "E", "G", "Bb"}},
		{"Cm7", []string{"C", "Eb", "G", "Bb"}},
		{"Bb7", []string{"Bb", "D", "F", "Ab"}},
		{"F#4m7b5", []string{"F#4", "A4", "C5", "E5"}},
		{"c", []string{"C", "E", "G"}},
		{"Eb sus4", []string{"Eb", "Ab", "Bb"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FromName(c.name))
		})
	}
}

func TestFromNameNumberIsChordType(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Get("7", "C"), FromName("C7"))
	// "C4" is the quartal chord on C, not C in the fourth octave
	assert.Equal([]string{"C", "F", "Bb", "Eb"}, FromName("C4"))
}

func TestFromNameNotANote(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(FromName("not-a-note-string"))
	assert.Empty(FromName(""))
	assert.Empty(FromName("Cnope"))
}

func TestCanonicalNamesResolve(t *testing.T) {
	defs, err := data.Embedded()
	require.NoError(t, err)

	names := Names(false)
	for _, def := range defs {
		assert.Contains(t, names, def.Name)
		assert.NotEmpty(t, Get(def.Name, ""), def.Name)
	}
}

func TestAliasesResolveLikeCanonical(t *testing.T) {
	defs, err := data.Embedded()
	require.NoError(t, err)

	for _, def := range defs {
		for _, alias := range def.Aliases {
			for _, tonic := range []string{"", "C", "Ab3"} {
				name := fmt.Sprintf("%s->%s on %q", alias, def.Name, tonic)
				assert.Equal(t, Get(def.Name, tonic), Get(alias, tonic), name)
			}
		}
	}
}

func TestNamesCounts(t *testing.T) {
	defs, err := data.Embedded()
	require.NoError(t, err)

	var aliases int
	for _, def := range defs {
		aliases += len(def.Aliases)
	}

	canonical := Names(false)
	all := Names(true)

	assert := assert.New(t)
	assert.Len(canonical, len(defs))
	assert.Len(all, len(defs)+aliases)
	assert.Subset(all, canonical)
	assert.Equal(len(all), Default().Len())
}

func TestNamesKeepsInsertionOrder(t *testing.T) {
	table := Build([]model.ChordDefinition{
		{Name: "b", Intervals: "1P 3M", Aliases: []string{"z", "a"}},
		{Name: "y", Intervals: "1P 5P"},
	})

	assert := assert.New(t)
	assert.Equal([]string{"b", "z", "a", "y"}, table.Names(true))
	assert.Equal([]string{"b", "y"}, table.Names(false))

	// the returned slice is a copy
	names := table.Names(true)
	names[0] = "changed"
	assert.Equal("b", table.Names(true)[0])
}

func TestEntryKinds(t *testing.T) {
	table := Build([]model.ChordDefinition{
		{Name: "M", Intervals: "1P 3M 5P", Aliases: []string{"Major"}},
	})

	assert := assert.New(t)
	e, ok := table.Entry("M")
	assert.True(ok)
	assert.Equal(KindIntervals, e.Kind)
	assert.Len(e.Intervals, 3)

	e, ok = table.Entry("Major")
	assert.True(ok)
	assert.Equal(KindAlias, e.Kind)
	assert.Equal("M", e.AliasOf)

	_, ok = table.Entry("nope")
	assert.False(ok)
}

func TestAliasToMissingNameIsUnresolved(t *testing.T) {
	// the alias takes over the canonical name, so the second hop dead-ends
	table := Build([]model.ChordDefinition{
		{Name: "x", Intervals: "1P 3M", Aliases: []string{"x"}},
	})
	_, ok := table.Lookup("x")
	assert.False(t, ok)
}

func TestBuildStrictRejectsBadIntervals(t *testing.T) {
	_, err := BuildStrict([]model.ChordDefinition{{Name: "bad", Intervals: "1P 3Q"}})
	assert.True(t, errors.Is(err, interval.ErrMalformed))

	assert.Panics(t, func() {
		Build([]model.ChordDefinition{{Name: "bad", Intervals: "1P 3Q"}})
	})
}

func TestFromNameSplitsNumberBeforeSuffixAsOctave(t *testing.T) {
	// "7" becomes the octave of the tonic and "b9" a raw minor ninth
	assert.Equal(t, []string{"Db8"}, FromName("C7b9"))
}
