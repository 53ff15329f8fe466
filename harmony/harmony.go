// Package harmony maps interval lists onto a tonic.
package harmony

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/note"
)

// Harmonizer is a chord shape waiting for its tonic. An empty tonic yields
// the intervals themselves.
type Harmonizer func(tonic string) []string

func New(ivls []interval.Interval) Harmonizer {
	return func(tonic string) []string {
		return Harmonize(ivls, tonic)
	}
}

// Harmonize returns the notes of ivls built on tonic, or the interval names
// when tonic is empty. An unparseable tonic gives an empty result. The
// octave of the tonic, if any, carries through to every note.
func Harmonize(ivls []interval.Interval, tonic string) []string {
	if len(ivls) == 0 {
		return nil
	}

	res := make([]string, 0, len(ivls))
	if tonic == "" {
		for _, ivl := range ivls {
			res = append(res, ivl.String())
		}
		return res
	}

	root, err := note.Parse(tonic)
	if err != nil {
		return nil
	}
	for _, ivl := range ivls {
		res = append(res, note.Transpose(root, ivl).String())
	}
	return res
}

// ParseList reads a whitespace separated list of intervals ("1P 3M 5P") or of
// notes ("C E G"). Notes are measured from the first one.
func ParseList(source string) ([]interval.Interval, error) {
	tokens := strings.Fields(source)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty interval list", interval.ErrMalformed)
	}

	ivls, ivlErr := parseIntervals(tokens)
	if ivlErr == nil {
		return ivls, nil
	}
	if ivls, err := parseNotes(tokens); err == nil {
		return ivls, nil
	}
	return nil, ivlErr
}

func parseIntervals(tokens []string) ([]interval.Interval, error) {
	res := make([]interval.Interval, 0, len(tokens))
	for _, t := range tokens {
		ivl, err := interval.Parse(t)
		if err != nil {
			return nil, err
		}
		res = append(res, ivl)
	}
	return res, nil
}

func parseNotes(tokens []string) ([]interval.Interval, error) {
	notes := make([]note.Note, 0, len(tokens))
	for _, t := range tokens {
		n, err := note.Parse(t)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	res := make([]interval.Interval, 0, len(notes))
	for _, n := range notes {
		res = append(res, note.Distance(notes[0], n))
	}
	return res, nil
}
