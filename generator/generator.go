// Package generator assembles a full piece: it composes the recipe, runs
// every measure of the motif through its chain, fits the result to the
// chord progression and lays the measures end to end.
package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/motifgen/accompaniment"
	"github.com/jsphweid/motifgen/config"
	"github.com/jsphweid/motifgen/logger"
	"github.com/jsphweid/motifgen/midi"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/strategy"
	"github.com/jsphweid/motifgen/theory"
	"github.com/jsphweid/motifgen/transform"
	"github.com/pkg/errors"
)

type Generator struct {
	cfg  config.Config
	key  theory.Key
	form strategy.Form
	rng  *rand.Rand
}

type Result struct {
	ID     string
	Recipe strategy.Recipe

	// Style is empty when accompaniment is off.
	Style         string
	Measures      []model.Notes
	Melody        model.Notes
	Accompaniment model.Notes
	TicksPerBeat  int
}

// NewRand seeds from the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// New validates cfg up front so a bad config never starts generating. A nil
// rng is replaced by NewRand(cfg.Seed).
func New(cfg config.Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key, err := theory.LookupKey(cfg.Key)
	if err != nil {
		return nil, err
	}
	form, err := strategy.ParseForm(cfg.Form)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	return &Generator{cfg: cfg, key: key, form: form, rng: rng}, nil
}

func (g *Generator) Generate() (*Result, error) {
	res := &Result{ID: uuid.New().String(), TicksPerBeat: g.cfg.TicksPerBeat}
	fields := logger.Fields{"generation_id": res.ID, "key": g.key.Name, "form": g.form.String(), "measures": g.cfg.NumMeasures}
	logger.Info("Generating melody", fields)

	recipe, err := strategy.Compose(g.form, g.cfg.NumMeasures, g.rng)
	if err != nil {
		return nil, err
	}
	res.Recipe = recipe

	res.Measures, err = g.melody(recipe, res.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range res.Measures {
		res.Melody = append(res.Melody, m...)
	}

	res.Accompaniment, res.Style, err = g.accompaniment()
	if err != nil {
		return nil, err
	}

	logger.Info("Generation finished", logger.Fields{
		"generation_id":       res.ID,
		"melody_notes":        len(res.Melody),
		"accompaniment_notes": len(res.Accompaniment),
		"style":               res.Style,
	})
	return res, nil
}

func (g *Generator) melody(recipe strategy.Recipe, id string) ([]model.Notes, error) {
	base := model.BaseMeasure(g.cfg.Motif)
	ticksPerMeasure := g.cfg.TicksPerMeasure()

	measures := make([]model.Notes, 0, len(recipe))
	for i, chain := range recipe {
		chordName := g.cfg.ChordProgression[i]
		chord, err := theory.LookupChord(chordName)
		if err != nil {
			return nil, errors.Wrapf(err, "measure %d", i+1)
		}

		measure := model.Clone(base)
		for _, t := range chain {
			measure = t.Apply(measure, g.key, g.cfg.TicksPerBeat, g.rng)
		}
		// harmony goes after the whole chain
		for j := range measure {
			measure[j].Pitch = theory.SnapToChord(measure[j].Pitch, chord)
		}
		measure = transform.PassingNotes.Apply(measure, g.key, g.cfg.TicksPerBeat, g.rng)

		logger.Debug("Measure composed", logger.Fields{
			"generation_id": id,
			"measure":       i + 1,
			"chain":         chain.String(),
			"chord":         chordName,
		})
		measures = append(measures, model.Offset(measure, i*ticksPerMeasure))
	}
	return measures, nil
}

func (g *Generator) accompaniment() (model.Notes, string, error) {
	if !g.cfg.PlayAccompaniment {
		return model.Notes{}, "", nil
	}
	style, err := accompaniment.Pick(g.cfg.AccompanimentStyle, g.rng)
	if err != nil {
		return nil, "", err
	}

	ticksPerMeasure := g.cfg.TicksPerMeasure()
	res := model.Notes{}
	for i, name := range g.cfg.ChordProgression {
		chord, err := theory.LookupChord(name)
		if err != nil {
			return nil, "", errors.Wrapf(err, "accompaniment measure %d", i+1)
		}
		res = append(res, model.Offset(style.Generate(chord, ticksPerMeasure, g.key), i*ticksPerMeasure)...)
	}
	return res, style.String(), nil
}

// Tracks is the melody track plus the accompaniment track when it is on.
func (r *Result) Tracks() []midi.TrackSpec {
	tracks := []midi.TrackSpec{midi.MelodyTrack(r.Melody)}
	if r.Style != "" {
		tracks = append(tracks, midi.AccompanimentTrack(r.Accompaniment))
	}
	return tracks
}

func (r *Result) Save(path string) error {
	return midi.WriteFile(path, r.TicksPerBeat, r.Tracks()...)
}

func (r *Result) Bytes() ([]byte, error) {
	return midi.Bytes(r.TicksPerBeat, r.Tracks()...)
}
