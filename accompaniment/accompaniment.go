package accompaniment

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/theory"
	"github.com/pkg/errors"
)

var ErrUnknownStyle = errors.New("unknown accompaniment style")

type Style int

const (
	BlockChords Style = iota
	ArpeggioUp
	AlbertiBass

	numStyles
)

var names = [numStyles]string{
	BlockChords: "block-chords",
	ArpeggioUp:  "arpeggio-up",
	AlbertiBass: "alberti-bass",
}

func (s Style) String() string {
	if s < 0 || s >= numStyles {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return names[s]
}

func All() []Style {
	res := make([]Style, numStyles)
	for i := range res {
		res[i] = Style(i)
	}
	return res
}

func Names() []string {
	return append([]string(nil), names[:]...)
}

// ParseStyle accepts both block-chords and block_chords spellings.
func ParseStyle(name string) (Style, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	for i, n := range names {
		if n == normalized {
			return Style(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStyle, "%q (available: %v)", name, Names())
}

// Pick resolves a configured style name, drawing one uniformly for "random".
func Pick(name string, rng *rand.Rand) (Style, error) {
	if name == "" || name == constants.RandomStyle {
		return Style(rng.Intn(int(numStyles))), nil
	}
	return ParseStyle(name)
}

// Generate renders one measure of the style over chord. Times start at 0.
// key is not read by any current style.
func (s Style) Generate(chord theory.Chord, ticksPerMeasure int, key theory.Key) model.Notes {
	switch s {
	case BlockChords:
		return blockChords(chord, ticksPerMeasure)
	case ArpeggioUp:
		return arpeggioUp(chord, ticksPerMeasure)
	case AlbertiBass:
		return albertiBass(chord, ticksPerMeasure)
	}
	panic(fmt.Sprintf("accompaniment: Generate called on %v", s))
}

func blockChords(chord theory.Chord, ticksPerMeasure int) model.Notes {
	res := make(model.Notes, 0, len(chord))
	for _, p := range chord {
		res = append(res, model.Note{Pitch: p - 12, Time: 0, Duration: ticksPerMeasure})
	}
	return res
}

func pattern(pitches []int, slots int, ticksPerMeasure int) model.Notes {
	slot := ticksPerMeasure / slots
	res := make(model.Notes, 0, slots)
	for i := 0; i < slots; i++ {
		res = append(res, model.Note{
			Pitch:    pitches[i%len(pitches)],
			Time:     i * slot,
			Duration: slot,
		})
	}
	return res
}

func arpeggioUp(chord theory.Chord, ticksPerMeasure int) model.Notes {
	if len(chord) < 3 {
		return model.Notes{}
	}
	root, third, fifth := chord[0], chord[1], chord[2]
	return pattern([]int{root - 12, third - 12, fifth - 12, root}, 4, ticksPerMeasure)
}

func albertiBass(chord theory.Chord, ticksPerMeasure int) model.Notes {
	if len(chord) < 3 {
		return model.Notes{}
	}
	root, third, fifth := chord[0]-12, chord[1]-12, chord[2]-12
	return pattern([]int{root, fifth, third, fifth}, 16, ticksPerMeasure)
}
