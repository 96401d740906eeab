//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/motifgen/cmd"
	"github.com/jsphweid/motifgen/config"
	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/db"
	"github.com/jsphweid/motifgen/generator"
	"github.com/jsphweid/motifgen/midi"
	"github.com/jsphweid/motifgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGenerateReqBody(body model.GenerateRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestScaleRunE2E(t *testing.T) {
	body := createGenerateReqBody(model.GenerateRequestBody{
		Key:             "C_major",
		Chords:          []string{"C", "C"},
		NumMeasures:     2,
		Form:            "free",
		Motif:           []model.MotifNote{{Pitch: 60, Duration: 480}, {Pitch: 62, Duration: 480}, {Pitch: 64, Duration: 480}},
		NoAccompaniment: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	s, err := midi.ReadMidi(respBody)
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)
	assert.Equal(model.Notes{
		{Pitch: 60, Time: 0, Duration: 480},
		{Pitch: 60, Time: 480, Duration: 240},
		{Pitch: 62, Time: 720, Duration: 240},
		{Pitch: 64, Time: 960, Duration: 480},
		{Pitch: 60, Time: 1920, Duration: 480},
		{Pitch: 60, Time: 2400, Duration: 480},
		{Pitch: 60, Time: 2880, Duration: 480},
	}, midi.Notes(s.Tracks[0]))
}

func TestSeededAABAE2E(t *testing.T) {
	generate := func() []byte {
		body := createGenerateReqBody(model.GenerateRequestBody{Seed: 1234, AccompanimentStyle: "alberti-bass"})
		req := httptest.NewRequest(http.MethodPost, "/generate", body)
		w := httptest.NewRecorder()
		cmd.HandleGenerate(w, req)
		require.Equal(t, 200, w.Code)
		return w.Body.Bytes()
	}

	first, second := generate(), generate()
	assert.Equal(t, first, second)

	s, err := midi.ReadMidi(first)
	require.NoError(t, err)
	require.Len(t, s.Tracks, 2)
	// 16 notes per measure, 8 chords
	assert.Len(t, midi.Notes(s.Tracks[1]), 128)
}

// Needs a local DynamoDB with the archive table, e.g. ARCHIVE_ENDPOINT=http://localhost:8000
func TestArchiveE2E(t *testing.T) {
	endpoint := constants.GetArchiveEndpoint()
	if endpoint == "" {
		t.Skip("ARCHIVE_ENDPOINT not set")
	}

	g, err := generator.New(config.Default(), generator.NewRand(99))
	require.NoError(t, err)
	res, err := g.Generate()
	require.NoError(t, err)

	path := t.TempDir() + "/archived.mid"
	require.NoError(t, res.Save(path))

	archive, err := db.NewArchive(endpoint, constants.GetArchiveTable())
	require.NoError(t, err)
	record := db.NewGeneration(res, constants.DefaultKey, constants.DefaultForm, path)
	require.NoError(t, archive.PutGeneration(record))

	back, err := archive.GetGeneration(res.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Recipe, back.Recipe)
	assert.Equal(t, path, back.Path)
	assert.Equal(t, res.Style, back.Style)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
