package transform

import (
	"math/rand"

	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/theory"
	"github.com/jsphweid/motifgen/util"
)

const (
	wholeStep        = 2
	passingThreshold = 3
)

// ending resolves the last note to the tonic, in the octave closest to the
// pitch it replaces.
func ending(notes model.Notes, scale theory.Scale) model.Notes {
	res := model.Clone(notes)
	if len(res) == 0 {
		return res
	}
	last := &res[len(res)-1]
	last.Pitch = theory.SnapToScale(last.Pitch, []int{scale.Tonic()})
	return res
}

func transpose(notes model.Notes, scale theory.Scale, semitones int) model.Notes {
	res := model.Clone(notes)
	for i := range res {
		res[i].Pitch = theory.SnapToScale(res[i].Pitch+semitones, scale)
	}
	return res
}

// passingNotes fills leaps of a minor third or more: the earlier note, if it
// lasts at least a beat, gives up its final eighth to a note one scale step
// toward the next pitch.
func passingNotes(notes model.Notes, scale theory.Scale, ticksPerBeat int) model.Notes {
	eighth := ticksPerBeat / 2
	res := make(model.Notes, 0, len(notes)*2)
	for i, n := range notes {
		if i+1 < len(notes) {
			interval := notes[i+1].Pitch - n.Pitch
			if util.Abs(interval) >= passingThreshold && n.Duration >= ticksPerBeat {
				shortened := n
				shortened.Duration -= eighth
				res = append(res, shortened, model.Note{
					Pitch:    passingPitch(n.Pitch, notes[i+1].Pitch, scale),
					Time:     shortened.End(),
					Duration: eighth,
				})
				continue
			}
		}
		res = append(res, n)
	}
	return res
}

func slightVariation(notes model.Notes, scale theory.Scale, rng *rand.Rand) model.Notes {
	res := model.Clone(notes)
	if len(res) == 0 {
		return res
	}
	step := rng.Intn(2)*2 - 1
	last := &res[len(res)-1]
	last.Pitch = theory.SnapToScale(last.Pitch+step, scale)
	return res
}

// passingPitch is the first scale tone after from on the way to to. A
// semitone step can snap straight back onto from, so it keeps walking.
func passingPitch(from int, to int, scale theory.Scale) int {
	step := util.Sign(to - from)
	for p := from + step; p != to; p += step {
		snapped := theory.SnapToScale(p, scale)
		if (snapped-to)*step > 0 {
			break
		}
		if snapped != from {
			return snapped
		}
	}
	return theory.SnapToScale(from+step, scale)
}
