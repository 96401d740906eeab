package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/motifgen/config"
	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/db"
	"github.com/jsphweid/motifgen/generator"
	"github.com/jsphweid/motifgen/logger"
	"github.com/jsphweid/motifgen/parse"
	"github.com/jsphweid/motifgen/util"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	configPath      string
	key             string
	chords          string
	motif           string
	measures        int
	form            string
	style           string
	noAccompaniment bool
	seed            int64
	out             string
	archive         string
}

var genFlags generateFlags

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.configPath, "config", "", "YAML generation file; flags override it")
	f.StringVar(&genFlags.key, "key", constants.DefaultKey, "key, e.g. C_major or A_minor")
	f.StringVar(&genFlags.chords, "chords", constants.DefaultChords, "comma separated chord progression, one chord per measure")
	f.StringVar(&genFlags.motif, "motif", constants.DefaultMotif, "motif as (pitch, duration) pairs")
	f.IntVar(&genFlags.measures, "measures", constants.DefaultNumMeasures, "number of measures")
	f.StringVar(&genFlags.form, "form", constants.DefaultForm, "aaba or free")
	f.StringVar(&genFlags.style, "style", constants.RandomStyle, "accompaniment style or random")
	f.BoolVar(&genFlags.noAccompaniment, "no-accompaniment", false, "write the melody track only")
	f.Int64Var(&genFlags.seed, "seed", 0, "random seed, 0 seeds from the clock")
	f.StringVar(&genFlags.out, "out", "", "output file (default $OUTPUT_DIR/<generation id>.mid)")
	f.StringVar(&genFlags.archive, "archive", "", "DynamoDB endpoint to archive the generation to (default $ARCHIVE_ENDPOINT)")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a piece from a motif",
	Long: `Generates a piece from a motif and writes it as a MIDI file. Defaults
can be replaced by a YAML file (--config) and individual flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := genFlags.config(cmd.Flags().Changed)
		if err != nil {
			return err
		}
		return genFlags.generate(cmd.OutOrStdout(), cfg)
	},
}

// config starts from the YAML file (or the defaults) and applies the flags
// the user set explicitly.
func (f generateFlags) config(changed func(string) bool) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if changed("key") {
		cfg.Key = f.key
	}
	if changed("chords") {
		cfg.ChordProgression = parse.ChordProgression(f.chords)
	}
	if changed("motif") {
		motif, err := parse.Motif(f.motif)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Motif = motif
	}
	if changed("measures") {
		cfg.NumMeasures = f.measures
	}
	if changed("form") {
		cfg.Form = f.form
	}
	if changed("style") {
		cfg.AccompanimentStyle = f.style
	}
	if changed("no-accompaniment") {
		cfg.PlayAccompaniment = !f.noAccompaniment
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	return cfg, nil
}

func (f generateFlags) generate(w io.Writer, cfg config.Config) error {
	g, err := generator.New(cfg, nil)
	if err != nil {
		return err
	}
	res, err := g.Generate()
	if err != nil {
		logger.Error("Generation failed", err, logger.Fields{"key": cfg.Key, "form": cfg.Form})
		return err
	}

	path := f.out
	if path == "" {
		dir := constants.GetOutputDir()
		if err := util.EnsureOutputDir(dir); err != nil {
			return err
		}
		path = util.MidiPath(dir, res.ID)
	}
	if err := res.Save(path); err != nil {
		logger.Error("Could not write MIDI file", err, logger.Fields{"generation_id": res.ID, "path": path})
		return err
	}

	fmt.Fprintf(w, "generation: %v\n", res.ID)
	fmt.Fprint(w, res.Recipe)
	if res.Style != "" {
		fmt.Fprintf(w, "accompaniment: %v\n", res.Style)
	}
	fmt.Fprintf(w, "wrote %v\n", path)

	endpoint := f.archive
	if endpoint == "" {
		endpoint = constants.GetArchiveEndpoint()
	}
	if endpoint == "" {
		return nil
	}
	archive, err := db.NewArchive(endpoint, constants.GetArchiveTable())
	if err != nil {
		return err
	}
	// the file is already written, a failed archive is only worth a warning
	if err := archive.PutGeneration(db.NewGeneration(res, cfg.Key, cfg.Form, path)); err != nil {
		logger.Warn("Could not archive generation", logger.Fields{"generation_id": res.ID, "error": err.Error()})
	}
	return nil
}
