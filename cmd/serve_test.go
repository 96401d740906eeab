package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/motifgen/midi"
	"github.com/jsphweid/motifgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	rec := post(t, `{
		"key": "C_major",
		"chords": ["C", "C"],
		"num_measures": 2,
		"form": "free",
		"motif": [{"pitch": 60, "duration": 480}, {"pitch": 62, "duration": 480}, {"pitch": 64, "duration": 480}],
		"no_accompaniment": true,
		"seed": 1
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "audio/midi", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Generation-Id"))

	s, err := midi.ReadMidi(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)
	notes := midi.Notes(s.Tracks[0])
	require.NotEmpty(t, notes)
	assert.Equal(t, 60, notes[len(notes)-1].Pitch)
}

func TestHandleGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"key": `},
		{"unknown key", `{"key": "H_major"}`},
		{"unknown chord", `{"chords": ["C", "Q"], "num_measures": 2, "form": "free"}`},
		{"unknown style", `{"accompaniment_style": "waltz"}`},
		{"aaba length", `{"num_measures": 4}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Keys, "C_major")
	assert.Contains(t, res.Chords, "G7")
	assert.Contains(t, res.Transforms, "ending")
	assert.Contains(t, res.Styles, "alberti-bass")
	assert.Equal(t, []string{"aaba", "free"}, res.Forms)
}

func TestRequestConfig(t *testing.T) {
	cfg := requestConfig(model.GenerateRequestBody{Key: "A_minor", NoAccompaniment: true})
	assert.Equal(t, "A_minor", cfg.Key)
	assert.False(t, cfg.PlayAccompaniment)
	assert.Equal(t, 8, cfg.NumMeasures)
}
