package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"G": 1, "Am": 2, "C": 3}
	assert.Equal(t, []string{"Am", "C", "G"}, GetKeys(m))
}

func TestIntegerHelpers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(int64(6), Sum([]uint32{1, 2, 3}))
	assert.Equal(-1, Sign(-7))
	assert.Equal(0, Sign(0))
	assert.Equal(1, Sign(9))
}

func TestMidiPath(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(filepath.Join("out", "song.mid"), MidiPath("out", "song"))
	assert.Equal(filepath.Join("out", "song.midi"), MidiPath("out", "song.midi"))
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.NoError(t, EnsureOutputDir(dir))
	assert.DirExists(t, dir)
	assert.NoError(t, EnsureOutputDir(""))
}
