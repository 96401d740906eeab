package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/motifgen/accompaniment"
	"github.com/jsphweid/motifgen/config"
	"github.com/jsphweid/motifgen/generator"
	"github.com/jsphweid/motifgen/logger"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/strategy"
	"github.com/jsphweid/motifgen/theory"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves generation over HTTP",
	Long:  `Serves POST /generate (returns audio/midi) and GET /catalog.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf(":%d", servePort)
		logger.Info("Listening", logger.Fields{"addr": addr})
		return http.ListenAndServe(addr, newRouter())
	},
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/catalog", HandleCatalog).Methods("GET")
	return cors.Default().Handler(router)
}

// requestConfig overlays the non-zero request fields on the defaults.
func requestConfig(body model.GenerateRequestBody) config.Config {
	cfg := config.Default()
	if body.Key != "" {
		cfg.Key = body.Key
	}
	if len(body.Chords) > 0 {
		cfg.ChordProgression = body.Chords
	}
	if body.NumMeasures != 0 {
		cfg.NumMeasures = body.NumMeasures
	}
	if body.TicksPerBeat != 0 {
		cfg.TicksPerBeat = body.TicksPerBeat
	}
	if body.BeatsPerMeasure != 0 {
		cfg.BeatsPerMeasure = body.BeatsPerMeasure
	}
	if len(body.Motif) > 0 {
		cfg.Motif = body.Motif
	}
	if body.AccompanimentStyle != "" {
		cfg.AccompanimentStyle = body.AccompanimentStyle
	}
	if body.Form != "" {
		cfg.Form = body.Form
	}
	cfg.PlayAccompaniment = !body.NoAccompaniment
	cfg.Seed = body.Seed
	return cfg
}

func isClientError(err error) bool {
	for _, target := range []error{
		config.ErrInvalid,
		strategy.ErrUnknownForm,
		strategy.ErrAABAMeasures,
		strategy.ErrTooFewMeasures,
		theory.ErrUnknownChord,
		accompaniment.ErrUnknownStyle,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var body model.GenerateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}

	// NOTE: one generator (and rng) per request, rand.Rand isn't safe to share
	g, err := generator.New(requestConfig(body), nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := g.Generate()
	if err != nil {
		status := http.StatusInternalServerError
		if isClientError(err) {
			status = http.StatusBadRequest
		} else {
			logger.Error("Generation failed", err, logger.Fields{"path": r.URL.Path})
		}
		writeError(w, status, err)
		return
	}
	data, err := res.Bytes()
	if err != nil {
		logger.Error("Could not encode MIDI", err, logger.Fields{"generation_id": res.ID})
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.ID+".mid"))
	w.Header().Set("X-Generation-Id", res.ID)
	w.Write(data)
}

func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog())
}
