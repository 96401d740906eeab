package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/motifgen/config"
	"github.com/jsphweid/motifgen/midi"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/parse"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestGenerateFlagsConfig(t *testing.T) {
	t.Run("defaults when nothing changed", func(t *testing.T) {
		cfg, err := generateFlags{key: "A_minor"}.config(changedSet())
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("changed flags override", func(t *testing.T) {
		f := generateFlags{
			key:             "G_major",
			chords:          "G, C",
			motif:           "(67, 960), (69, 960)",
			measures:        2,
			form:            "free",
			noAccompaniment: true,
			seed:            5,
		}
		cfg, err := f.config(changedSet("key", "chords", "motif", "measures", "form", "no-accompaniment", "seed"))
		require.NoError(t, err)
		assert.Equal(t, "G_major", cfg.Key)
		assert.Equal(t, []string{"G", "C"}, cfg.ChordProgression)
		assert.Equal(t, []model.MotifNote{{Pitch: 67, Duration: 960}, {Pitch: 69, Duration: 960}}, cfg.Motif)
		assert.Equal(t, 2, cfg.NumMeasures)
		assert.Equal(t, "free", cfg.Form)
		assert.False(t, cfg.PlayAccompaniment)
		assert.Equal(t, int64(5), cfg.Seed)
	})

	t.Run("yaml file then flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("key: D_major\nform: free\nnum_measures: 3\n"), 0666))
		cfg, err := generateFlags{configPath: path, form: "aaba", measures: 8}.config(changedSet("form", "measures"))
		require.NoError(t, err)
		assert.Equal(t, "D_major", cfg.Key)
		assert.Equal(t, "aaba", cfg.Form)
		assert.Equal(t, 8, cfg.NumMeasures)
	})

	t.Run("bad motif", func(t *testing.T) {
		_, err := generateFlags{motif: "(60, 480), oops"}.config(changedSet("motif"))
		var perr *parse.ParsingError
		assert.True(t, errors.As(err, &perr))
	})
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piece.mid")
	f := generateFlags{out: path}
	cfg := config.Default()
	cfg.Seed = 11

	var out bytes.Buffer
	require.NoError(t, f.generate(&out, cfg))
	assert.Contains(t, out.String(), "generation: ")
	assert.Contains(t, out.String(), "1: identity")
	assert.Contains(t, out.String(), "wrote "+path)

	s, err := midi.ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 2)
}

func TestGenerateDoesNotWriteOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piece.mid")
	cfg := config.Default()
	cfg.ChordProgression = []string{"C", "G", "Am", "Em", "F", "C", "F", "Zz"}

	err := generateFlags{out: path}.generate(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
