// Package interval parses interval tokens such as "3M", "m7", "5" or "b9"
// into a semantic value that can be measured and rendered back.
package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/util"
)

var ErrMalformed = errors.New("malformed interval")

var (
	numberFirst  = regexp.MustCompile(`^([-+]?)(\d+)(d{1,4}|m|M|P|A{1,4})?$`)
	qualityFirst = regexp.MustCompile(`^(A{1,4}|d{1,4}|m|M|P|b{1,2}|#{1,2})([-+]?)(\d+)$`)
)

// semitone size of each simple interval class with perfect or major quality
var classSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

type Interval struct {
	// 1-based interval number, 1 is a unison and 8 an octave
	Number int
	// semitones away from the perfect (1, 4, 5) or major (2, 3, 6, 7) size
	Alteration int
	Descending bool
}

func Parse(token string) (Interval, error) {
	var sign, num, quality string
	if m := numberFirst.FindStringSubmatch(token); m != nil {
		sign, num, quality = m[1], m[2], m[3]
	} else if m := qualityFirst.FindStringSubmatch(token); m != nil {
		quality, sign, num = m[1], m[2], m[3]
	} else {
		return Interval{}, fmt.Errorf("%w: %q", ErrMalformed, token)
	}

	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return Interval{}, fmt.Errorf("%w: %q", ErrMalformed, token)
	}

	ivl := Interval{Number: n, Descending: sign == "-"}
	alt, ok := alteration(ivl.perfectable(), quality)
	if !ok {
		return Interval{}, fmt.Errorf("%w: quality %q not valid for %q", ErrMalformed, quality, token)
	}
	ivl.Alteration = alt
	return ivl, nil
}

func MustParse(token string) Interval {
	ivl, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return ivl
}

func alteration(perfectable bool, quality string) (int, bool) {
	if quality == "" {
		return 0, true
	}
	n := len(quality)
	switch quality[0] {
	case 'P':
		return 0, perfectable
	case 'M':
		return 0, !perfectable
	case 'm':
		return -1, !perfectable
	case 'A', '#':
		return n, true
	case 'b':
		return -n, true
	case 'd':
		if perfectable {
			return -n, true
		}
		return -n - 1, true
	}
	return 0, false
}

// Class is the 0-based simple interval class: 0 for unisons and octaves,
// 2 for thirds and tenths.
func (i Interval) Class() int {
	return (i.Number - 1) % 7
}

func (i Interval) Octaves() int {
	return (i.Number - 1) / 7
}

func (i Interval) perfectable() bool {
	c := i.Class()
	return c == 0 || c == 3 || c == 4
}

func (i Interval) direction() int {
	if i.Descending {
		return -1
	}
	return 1
}

// Steps is the signed distance in letter names.
func (i Interval) Steps() int {
	return i.direction() * (i.Number - 1)
}

func (i Interval) Semitones() int {
	size := classSemitones[i.Class()] + 12*i.Octaves() + i.Alteration
	return i.direction() * size
}

func (i Interval) Quality() string {
	alt := i.Alteration
	if i.perfectable() {
		if alt == 0 {
			return "P"
		}
		return util.RepeatSigned(alt, "A", "d")
	}
	switch {
	case alt == 0:
		return "M"
	case alt == -1:
		return "m"
	case alt > 0:
		return strings.Repeat("A", alt)
	}
	return strings.Repeat("d", -alt-1)
}

func (i Interval) String() string {
	var b strings.Builder
	if i.Descending {
		b.WriteByte('-')
	}
	b.WriteString(strconv.Itoa(i.Number))
	b.WriteString(i.Quality())
	return b.String()
}

// FromSteps builds the interval spanning the given signed number of letter
// steps and semitones, e.g. (2, 3) is a minor third and (-4, -7) a
// descending fifth.
func FromSteps(steps int, semitones int) Interval {
	ivl := Interval{Number: util.Abs(steps) + 1}
	if steps < 0 || (steps == 0 && semitones < 0) {
		ivl.Descending = true
	}
	size := ivl.direction() * semitones
	ivl.Alteration = size - classSemitones[ivl.Class()] - 12*ivl.Octaves()
	return ivl
}
