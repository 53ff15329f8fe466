package chord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jsphweid/chordex/data"
	"github.com/jsphweid/chordex/harmony"
	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

type Kind uint8

const (
	KindIntervals Kind = iota
	KindAlias
)

// Entry is either the intervals of a canonical chord name or the canonical
// name an alias points to.
type Entry struct {
	Kind      Kind
	Intervals []interval.Interval
	AliasOf   string
}

// Table maps chord names and aliases to entries. It is never modified after
// Build returns, so it can be shared freely.
type Table struct {
	entries map[string]Entry
	order   []string
}

// Build panics on a malformed interval, the packaged data is trusted.
func Build(defs []model.ChordDefinition) *Table {
	t, err := BuildStrict(defs)
	if err != nil {
		panic("Could not build chord table: " + err.Error())
	}
	return t
}

// BuildStrict is Build for data that came from a user.
func BuildStrict(defs []model.ChordDefinition) (*Table, error) {
	t := &Table{entries: make(map[string]Entry)}
	for _, def := range defs {
		ivls, err := parseIntervals(def.Intervals)
		if err != nil {
			return nil, fmt.Errorf("chord %q: %w", def.Name, err)
		}
		t.put(def.Name, Entry{Kind: KindIntervals, Intervals: ivls})
		for _, alias := range def.Aliases {
			t.put(alias, Entry{Kind: KindAlias, AliasOf: def.Name})
		}
	}
	return t, nil
}

func parseIntervals(s string) ([]interval.Interval, error) {
	tokens := strings.Fields(s)
	res := make([]interval.Interval, 0, len(tokens))
	for _, tok := range tokens {
		ivl, err := interval.Parse(tok)
		if err != nil {
			return nil, err
		}
		res = append(res, ivl)
	}
	return res, nil
}

func (t *Table) put(name string, e Entry) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = e
}

func (t *Table) Entry(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

func (t *Table) Len() int {
	return len(t.order)
}

// Lookup returns the intervals for a chord name, following an alias once.
func (t *Table) Lookup(name string) ([]interval.Interval, bool) {
	e, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	if e.Kind == KindAlias {
		e, ok = t.entries[e.AliasOf]
		if !ok || e.Kind != KindIntervals {
			return nil, false
		}
	}
	return e.Intervals, true
}

// Intervals resolves source as a chord name, or failing that as a raw list
// of intervals or notes. Errors wrap interval.ErrMalformed.
func (t *Table) Intervals(source string) ([]interval.Interval, error) {
	if ivls, ok := t.Lookup(source); ok {
		return ivls, nil
	}
	return harmony.ParseList(source)
}

// Builder returns the chord for source with the tonic left open. Sources
// that cannot be resolved give a builder that always returns nil.
func (t *Table) Builder(source string) harmony.Harmonizer {
	ivls, err := t.Intervals(source)
	if err != nil {
		return func(string) []string { return nil }
	}
	return harmony.New(ivls)
}

// Chord returns the notes of source built on tonic, or its intervals when
// tonic is empty.
func (t *Table) Chord(source string, tonic string) []string {
	return t.Builder(source)(tonic)
}

// FromName splits names like "CMaj7" or "Eb4m7" into tonic and chord type.
// A bare number after the note is the chord type, not the octave: "C7" is a
// dominant seventh on C.
func (t *Table) FromName(name string) []string {
	p, ok := note.Split(name)
	if !ok {
		return nil
	}
	if p.Rest != "" {
		return t.Chord(p.Rest, p.Letter+p.Accidental+p.Octave)
	}
	return t.Chord(p.Octave, p.Letter+p.Accidental)
}

// Names lists canonical chord names in data file order, followed inline by
// their aliases when aliases is true.
func (t *Table) Names(aliases bool) []string {
	if aliases {
		res := make([]string, len(t.order))
		copy(res, t.order)
		return res
	}
	var res []string
	for _, name := range t.order {
		if t.entries[name].Kind == KindIntervals {
			res = append(res, name)
		}
	}
	return res
}

var defaultTable = sync.OnceValue(func() *Table {
	defs, err := data.Embedded()
	if err != nil {
		panic("Could not load chord data: " + err.Error())
	}
	return Build(defs)
})

// Default is the table built from the packaged chord data.
func Default() *Table {
	return defaultTable()
}

func Get(source string, tonic string) []string {
	return Default().Chord(source, tonic)
}

func NewBuilder(source string) harmony.Harmonizer {
	return Default().Builder(source)
}

func Intervals(source string) ([]interval.Interval, error) {
	return Default().Intervals(source)
}

func FromName(name string) []string {
	return Default().FromName(name)
}

func Names(aliases bool) []string {
	return Default().Names(aliases)
}
