// Package transform holds the measure-level operations a composition recipe
// is made of. Every transform takes one measure of notes (times relative to
// the measure start) and returns a new slice; the input is never modified.
package transform

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/theory"
	"github.com/pkg/errors"
)

var ErrUnknownTransform = errors.New("unknown transform")

type Transform int

const (
	Identity Transform = iota
	Retrograde
	Ending
	RhythmStaccato
	RhythmDoubleTime
	RhythmDotted
	RhythmTriplet
	SyncopationPush
	SyncopationPull
	TransposeUp
	TransposeDown
	PassingNotes
	SlightVariation

	numTransforms
)

var names = [numTransforms]string{
	Identity:         "identity",
	Retrograde:       "retrograde",
	Ending:           "ending",
	RhythmStaccato:   "rhythm-staccato",
	RhythmDoubleTime: "rhythm-double-time",
	RhythmDotted:     "rhythm-dotted",
	RhythmTriplet:    "rhythm-triplet",
	SyncopationPush:  "syncopation-push",
	SyncopationPull:  "syncopation-pull",
	TransposeUp:      "transpose-up",
	TransposeDown:    "transpose-down",
	PassingNotes:     "passing-notes",
	SlightVariation:  "slight-variation",
}

func (t Transform) String() string {
	if t < 0 || t >= numTransforms {
		return fmt.Sprintf("transform(%d)", int(t))
	}
	return names[t]
}

func (t Transform) MarshalText() ([]byte, error) {
	if t < 0 || t >= numTransforms {
		return nil, errors.Wrapf(ErrUnknownTransform, "%d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Transform) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func Parse(name string) (Transform, error) {
	for i, n := range names {
		if n == name {
			return Transform(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTransform, "%q", name)
}

func All() []Transform {
	res := make([]Transform, numTransforms)
	for i := range res {
		res[i] = Transform(i)
	}
	return res
}

func Names() []string {
	return append([]string(nil), names[:]...)
}

// Random reports whether Apply draws from the random source.
func (t Transform) Random() bool {
	return t == RhythmTriplet || t == SlightVariation
}

// Apply runs the transform over one measure. rng is only read by the
// transforms for which Random reports true and may be nil otherwise.
func (t Transform) Apply(notes model.Notes, key theory.Key, ticksPerBeat int, rng *rand.Rand) model.Notes {
	eighth := ticksPerBeat / 2
	switch t {
	case Identity:
		return model.Clone(notes)
	case Retrograde:
		return retrograde(notes)
	case Ending:
		return ending(notes, key.Scale)
	case RhythmStaccato:
		return staccato(notes, eighth)
	case RhythmDoubleTime:
		return doubleTime(notes)
	case RhythmDotted:
		return dotted(notes, ticksPerBeat)
	case RhythmTriplet:
		return triplet(notes, ticksPerBeat, rng)
	case SyncopationPush:
		return push(notes, eighth)
	case SyncopationPull:
		return pull(notes, eighth)
	case TransposeUp:
		return transpose(notes, key.Scale, wholeStep)
	case TransposeDown:
		return transpose(notes, key.Scale, -wholeStep)
	case PassingNotes:
		return passingNotes(notes, key.Scale, ticksPerBeat)
	case SlightVariation:
		return slightVariation(notes, key.Scale, rng)
	}
	panic(fmt.Sprintf("transform: Apply called on %v", t))
}
