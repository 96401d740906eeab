package transform

import (
	"math/rand"

	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/util"
)

// staccato cuts notes down to an eighth; shorter notes keep their length.
func staccato(notes model.Notes, eighth int) model.Notes {
	res := model.Clone(notes)
	for i := range res {
		res[i].Duration = util.Min(res[i].Duration, eighth)
	}
	return res
}

func doubleTime(notes model.Notes) model.Notes {
	res := make(model.Notes, 0, len(notes)*2)
	for _, n := range notes {
		half := n.Duration / 2
		if half == 0 {
			res = append(res, n)
			continue
		}
		res = append(res,
			model.Note{Pitch: n.Pitch, Time: n.Time, Duration: half},
			model.Note{Pitch: n.Pitch, Time: n.Time + half, Duration: n.Duration - half},
		)
	}
	return res
}

// splitBeats replaces every whole beat of n with the given subdivision and
// keeps whatever is left under a beat as one trailing note.
func splitBeats(n model.Note, ticksPerBeat int, parts []int) model.Notes {
	var res model.Notes
	beats := n.Duration / ticksPerBeat
	t := n.Time
	for b := 0; b < beats; b++ {
		for _, d := range parts {
			res = append(res, model.Note{Pitch: n.Pitch, Time: t, Duration: d})
			t += d
		}
	}
	if rest := n.Duration - beats*ticksPerBeat; rest > 0 {
		res = append(res, model.Note{Pitch: n.Pitch, Time: t, Duration: rest})
	}
	return res
}

func dotted(notes model.Notes, ticksPerBeat int) model.Notes {
	dottedEighth := ticksPerBeat * 3 / 4
	parts := []int{dottedEighth, ticksPerBeat - dottedEighth}

	res := make(model.Notes, 0, len(notes))
	for _, n := range notes {
		if n.Duration < ticksPerBeat {
			res = append(res, n)
			continue
		}
		res = append(res, splitBeats(n, ticksPerBeat, parts)...)
	}
	return res
}

func triplet(notes model.Notes, ticksPerBeat int, rng *rand.Rand) model.Notes {
	var candidates []int
	for i, n := range notes {
		if n.Duration >= ticksPerBeat {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return model.Clone(notes)
	}
	chosen := candidates[rng.Intn(len(candidates))]

	third := ticksPerBeat / 3
	parts := []int{third, third, ticksPerBeat - 2*third}

	res := make(model.Notes, 0, len(notes)+3)
	for i, n := range notes {
		if i != chosen {
			res = append(res, n)
			continue
		}
		res = append(res, splitBeats(n, ticksPerBeat, parts)...)
	}
	return res
}
