// Package note splits note names like "C#4" or "Bbmaj7" into their parts and
// does pitch arithmetic on them.
package note

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/util"
)

var ErrInvalid = errors.New("invalid note")

// letter, accidentals, octave, rest
var noteRegex = regexp.MustCompile(`^([a-gA-G])(#{1,}|b{1,}|x{1,}|)(-?\d*)\s*(.*)\s*$`)

const letters = "CDEFGAB"

var stepSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Parts holds the four groups of a note name match. Rest is whatever follows
// the note, for "Cmaj7" it is "maj7".
type Parts struct {
	Letter     string
	Accidental string
	Octave     string
	Rest       string
}

func Split(s string) (Parts, bool) {
	m := noteRegex.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, false
	}
	return Parts{Letter: m[1], Accidental: m[2], Octave: m[3], Rest: m[4]}, true
}

type Note struct {
	// 0 for C up to 6 for B
	Step int
	// positive for sharps, negative for flats
	Alteration int
	Octave     int
	HasOctave  bool
}

func Parse(s string) (Note, error) {
	p, ok := Split(s)
	if !ok || p.Rest != "" {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return fromParts(p)
}

func fromParts(p Parts) (Note, error) {
	var n Note
	n.Step = strings.IndexByte(letters, strings.ToUpper(p.Letter)[0])

	switch {
	case strings.HasPrefix(p.Accidental, "#"):
		n.Alteration = len(p.Accidental)
	case strings.HasPrefix(p.Accidental, "b"):
		n.Alteration = -len(p.Accidental)
	case strings.HasPrefix(p.Accidental, "x"):
		n.Alteration = 2 * len(p.Accidental)
	}

	if p.Octave != "" {
		oct, err := strconv.Atoi(p.Octave)
		if err != nil {
			return Note{}, fmt.Errorf("%w: octave %q", ErrInvalid, p.Octave)
		}
		n.Octave = oct
		n.HasOctave = true
	}
	return n, nil
}

func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Note) Letter() string {
	return letters[n.Step : n.Step+1]
}

func (n Note) PitchClass() string {
	return n.Letter() + util.RepeatSigned(n.Alteration, "#", "b")
}

func (n Note) String() string {
	if !n.HasOctave {
		return n.PitchClass()
	}
	return n.PitchClass() + strconv.Itoa(n.Octave)
}

// semitones from C0, octave-less notes are taken in octave 0
func (n Note) semitones() int {
	return 12*n.Octave + stepSemitones[n.Step] + n.Alteration
}

// Midi returns the MIDI key number where C4 is 60. Notes without an octave
// are placed in defaultOctave.
func (n Note) Midi(defaultOctave int) int {
	if !n.HasOctave {
		n.Octave = defaultOctave
	}
	return n.semitones() + 12
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// FromMidi spells a MIDI key number using sharps.
func FromMidi(key int) Note {
	oct := util.FloorDiv(key, 12) - 1
	n := MustParse(sharpNames[util.Mod(key, 12)])
	n.Octave = oct
	n.HasOctave = true
	return n
}

// Transpose moves n by ivl keeping the letter spelling the interval implies,
// so C transposed by a minor ninth is Db, not C#.
func Transpose(n Note, ivl interval.Interval) Note {
	abs := n.Step + ivl.Steps()
	step := util.Mod(abs, 7)
	octShift := util.FloorDiv(abs, 7)

	target := stepSemitones[n.Step] + n.Alteration + ivl.Semitones()
	natural := stepSemitones[step] + 12*octShift

	res := Note{
		Step:       step,
		Alteration: target - natural,
		HasOctave:  n.HasOctave,
	}
	if n.HasOctave {
		res.Octave = n.Octave + octShift
	}
	return res
}

// Distance is the interval from a to b. When either note lacks an octave b
// is taken as the closest note at or above a.
func Distance(a Note, b Note) interval.Interval {
	steps := b.Step - a.Step
	semis := stepSemitones[b.Step] + b.Alteration - stepSemitones[a.Step] - a.Alteration
	if a.HasOctave && b.HasOctave {
		steps += 7 * (b.Octave - a.Octave)
		semis += 12 * (b.Octave - a.Octave)
	} else if steps < 0 {
		steps += 7
		semis += 12
	}
	return interval.FromSteps(steps, semis)
}
