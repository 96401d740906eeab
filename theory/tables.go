package theory

import (
	"github.com/jsphweid/motifgen/util"
	"github.com/pkg/errors"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrUnknownChord = errors.New("unknown chord")
)

// Scale lists one octave of in-key pitches, tonic first.
type Scale []int

func (s Scale) Tonic() int {
	return s[0]
}

// Chord lists chord tones root first (root, third, fifth, optional seventh).
type Chord []int

// Key pairs a key name with its scale.
type Key struct {
	Name  string
	Scale Scale
}

var scales = map[string]Scale{
	"C_major": {60, 62, 64, 65, 67, 69, 71},
	"G_major": {55, 57, 59, 60, 62, 64, 66},
	"D_major": {62, 64, 66, 67, 69, 71, 73},
	"A_minor": {57, 59, 60, 62, 64, 65, 67},
}

// NOTE: voiced for C major; other keys reuse the same table
var chords = map[string]Chord{
	"C":  {60, 64, 67},
	"Dm": {62, 65, 69},
	"Em": {64, 67, 71},
	"F":  {65, 69, 72},
	"G":  {67, 71, 74},
	"Am": {69, 72, 76},
	"G7": {67, 71, 74, 78},
}

func LookupKey(name string) (Key, error) {
	s, ok := scales[name]
	if !ok {
		return Key{}, errors.Wrapf(ErrUnknownKey, "%q (available: %v)", name, ScaleNames())
	}
	return Key{Name: name, Scale: append(Scale(nil), s...)}, nil
}

func LookupChord(name string) (Chord, error) {
	c, ok := chords[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChord, "%q (available: %v)", name, ChordNames())
	}
	return append(Chord(nil), c...), nil
}

func ScaleNames() []string {
	return util.GetKeys(scales)
}

func ChordNames() []string {
	return util.GetKeys(chords)
}
