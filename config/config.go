package config

import (
	"os"

	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/parse"
	"github.com/jsphweid/motifgen/strategy"
	"github.com/jsphweid/motifgen/theory"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is everything one generation needs. It is validated once and then
// only read.
type Config struct {
	Key                string            `yaml:"key" json:"key"`
	ChordProgression   []string          `yaml:"chord_progression" json:"chord_progression"`
	NumMeasures        int               `yaml:"num_measures" json:"num_measures"`
	TicksPerBeat       int               `yaml:"ticks_per_beat" json:"ticks_per_beat"`
	BeatsPerMeasure    int               `yaml:"beats_per_measure" json:"beats_per_measure"`
	Motif              []model.MotifNote `yaml:"motif" json:"motif"`
	PlayAccompaniment  bool              `yaml:"play_accompaniment" json:"play_accompaniment"`
	AccompanimentStyle string            `yaml:"accompaniment_style" json:"accompaniment_style"`
	Form               string            `yaml:"form" json:"form"`

	// Seed feeds the random source; 0 means seed from the clock.
	Seed int64 `yaml:"seed" json:"seed"`
}

func Default() Config {
	motif, err := parse.Motif(constants.DefaultMotif)
	if err != nil {
		panic("default motif does not parse: " + err.Error())
	}
	return Config{
		Key:                constants.DefaultKey,
		ChordProgression:   parse.ChordProgression(constants.DefaultChords),
		NumMeasures:        constants.DefaultNumMeasures,
		TicksPerBeat:       constants.DefaultTicksPerBeat,
		BeatsPerMeasure:    constants.DefaultBeatsPerMeasure,
		Motif:              motif,
		PlayAccompaniment:  true,
		AccompanimentStyle: constants.RandomStyle,
		Form:               constants.DefaultForm,
	}
}

func (c Config) TicksPerMeasure() int {
	return c.TicksPerBeat * c.BeatsPerMeasure
}

func (c Config) Validate() error {
	if _, err := theory.LookupKey(c.Key); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if c.NumMeasures < 1 {
		return errors.Wrapf(ErrInvalid, "num_measures must be positive, got %d", c.NumMeasures)
	}
	if len(c.ChordProgression) < c.NumMeasures {
		return errors.Wrapf(ErrInvalid, "chord progression has %d chords for %d measures", len(c.ChordProgression), c.NumMeasures)
	}
	if c.TicksPerBeat <= 0 || c.BeatsPerMeasure <= 0 {
		return errors.Wrapf(ErrInvalid, "ticks_per_beat (%d) and beats_per_measure (%d) must be positive", c.TicksPerBeat, c.BeatsPerMeasure)
	}
	if len(c.Motif) == 0 {
		return errors.Wrap(ErrInvalid, "motif is empty")
	}
	for i, n := range c.Motif {
		if n.Duration <= 0 {
			return errors.Wrapf(ErrInvalid, "motif note %d has duration %d", i, n.Duration)
		}
		if n.Pitch < constants.MinPitch || n.Pitch > constants.MaxPitch {
			return errors.Wrapf(ErrInvalid, "motif note %d has pitch %d", i, n.Pitch)
		}
	}
	form, err := strategy.ParseForm(c.Form)
	if err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	// keep the strategy sentinel visible to errors.Is
	return form.Check(c.NumMeasures)
}

// Load reads a YAML generation file on top of the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config %v", path)
	}
	return Unmarshal(data)
}

func Unmarshal(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
