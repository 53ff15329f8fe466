package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/note"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	// play the notes one after another instead of together
	Arpeggio bool
	Channel  uint8
	Velocity uint8
	BPM      float64
}

func DefaultOptions() Options {
	return Options{Velocity: constants.DefaultVelocity, BPM: 120}
}

// Keys converts note names to MIDI key numbers. Notes without an octave
// are stacked upwards from defaultOctave so "C E G Bb D" keeps its shape.
func Keys(notes []string, defaultOctave int) ([]uint8, error) {
	res := make([]uint8, 0, len(notes))
	prev := -1
	for _, name := range notes {
		n, err := note.Parse(name)
		if err != nil {
			return nil, err
		}
		key := n.Midi(defaultOctave)
		if !n.HasOctave {
			for key < prev {
				key += 12
			}
		}
		prev = key
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("%s is outside the MIDI key range", name)
		}
		res = append(res, uint8(key))
	}
	return res, nil
}

// WriteChord writes keys as a single track SMF. The chord is held for one
// 4/4 bar after the last note starts.
func WriteChord(w io.Writer, keys []uint8, opts Options) error {
	if len(keys) == 0 {
		return errors.New("no notes to write")
	}

	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var step uint32
	if opts.Arpeggio {
		step = ticks.Ticks8th()
	}
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = step
		}
		tr.Add(delta, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = 4 * ticks.Ticks4th()
		}
		tr.Add(delta, gomidi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

func Read(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return ReadFrom(bytes.NewReader(dat))
}

func ReadFrom(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if msg, ok := recover().(string); ok {
			s, e = nil, errors.New(msg)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

// NoteOnKeys lists the key of every note start, track by track.
func NoteOnKeys(s *smf.SMF) []uint8 {
	var res []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if gomidi.Message(event.Message).GetNoteStart(&channel, &key, &velocity) {
				res = append(res, key)
			}
		}
	}
	return res
}

// AbsTicks lists the absolute tick of every note start, matching NoteOnKeys.
func AbsTicks(s *smf.SMF) []int64 {
	var res []int64
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if gomidi.Message(event.Message).GetNoteStart(&channel, &key, &velocity) {
				res = append(res, absTicks)
			}
		}
	}
	return res
}
