package strategy

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jsphweid/motifgen/transform"
	"github.com/pkg/errors"
)

var (
	ErrUnknownForm    = errors.New("unknown form")
	ErrTooFewMeasures = errors.New("free development needs at least 2 measures")
	ErrAABAMeasures   = errors.New("AABA form only supports 8 measures")
)

// Chain is applied left to right to one measure.
type Chain []transform.Transform

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}
	return strings.Join(parts, " -> ")
}

// Recipe holds one chain per measure.
type Recipe []Chain

func (r Recipe) String() string {
	var b strings.Builder
	for i, c := range r {
		fmt.Fprintf(&b, "%d: %v\n", i+1, c)
	}
	return b.String()
}

type Form int

const (
	AABA Form = iota
	FreeDevelopment
)

func (f Form) String() string {
	switch f {
	case AABA:
		return "aaba"
	case FreeDevelopment:
		return "free"
	}
	return fmt.Sprintf("form(%d)", int(f))
}

func Forms() []Form {
	return []Form{AABA, FreeDevelopment}
}

func ParseForm(name string) (Form, error) {
	for _, f := range Forms() {
		if f.String() == strings.ToLower(strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownForm, "%q", name)
}

const aabaMeasures = 8

var (
	freeDevelopment = []transform.Transform{
		transform.Retrograde,
		transform.RhythmStaccato,
		transform.RhythmDoubleTime,
		transform.RhythmDotted,
		transform.RhythmTriplet,
		transform.SyncopationPush,
		transform.SyncopationPull,
		transform.TransposeUp,
		transform.TransposeDown,
	}
	aabaDevelopment = []transform.Transform{
		transform.TransposeUp,
		transform.TransposeDown,
		transform.RhythmStaccato,
		transform.RhythmDotted,
		transform.RhythmTriplet,
	}
	subtle = []transform.Transform{
		transform.SlightVariation,
		transform.PassingNotes,
	}
)

// Check reports whether the form can be laid out over numMeasures.
func (f Form) Check(numMeasures int) error {
	switch f {
	case AABA:
		if numMeasures != aabaMeasures {
			return errors.Wrapf(ErrAABAMeasures, "got %d", numMeasures)
		}
	case FreeDevelopment:
		if numMeasures < 2 {
			return errors.Wrapf(ErrTooFewMeasures, "got %d", numMeasures)
		}
	default:
		return errors.Wrapf(ErrUnknownForm, "%v", f)
	}
	return nil
}

func Compose(f Form, numMeasures int, rng *rand.Rand) (Recipe, error) {
	if err := f.Check(numMeasures); err != nil {
		return nil, err
	}
	if f == AABA {
		return composeAABA(rng), nil
	}
	return composeFree(numMeasures, rng), nil
}

func pick(set []transform.Transform, rng *rand.Rand) Chain {
	return Chain{set[rng.Intn(len(set))]}
}

// sample draws 1 or 2 distinct members of set in random order.
func sample(set []transform.Transform, rng *rand.Rand) Chain {
	k := rng.Intn(2) + 1
	perm := rng.Perm(len(set))
	res := make(Chain, k)
	for i := 0; i < k; i++ {
		res[i] = set[perm[i]]
	}
	return res
}

func composeFree(numMeasures int, rng *rand.Rand) Recipe {
	res := make(Recipe, 0, numMeasures)
	res = append(res, Chain{transform.Identity})
	for i := 0; i < numMeasures-2; i++ {
		res = append(res, pick(freeDevelopment, rng))
	}
	return append(res, Chain{transform.Ending})
}

func composeAABA(rng *rand.Rand) Recipe {
	return Recipe{
		// A: a a'
		{transform.Identity},
		pick(subtle, rng),
		// A': a a''
		{transform.Identity},
		pick(subtle, rng),
		// B
		sample(aabaDevelopment, rng),
		sample(aabaDevelopment, rng),
		// A'': a, resolution
		{transform.Identity},
		{transform.Ending},
	}
}
