package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/motifgen/midi"
	"github.com/spf13/cobra"
)

var (
	inspectFrom  uint64
	inspectLimit int
)

func init() {
	inspectCmd.Flags().Uint64Var(&inspectFrom, "from", 0, "first tick to show")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "max note events per track, 0 shows all")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Prints the resolution and the notes of every track of a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0], inspectFrom, inspectLimit)
	},
}

func inspect(w io.Writer, path string, from uint64, limit int) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ticks per beat: %v\n", midi.TicksPerBeat(s))
	fmt.Fprintf(w, "tracks: %v\n", len(s.Tracks))

	excerpt := midi.Excerpt(s, from, limit)
	for i, track := range excerpt.Tracks {
		notes := midi.DecodeNotes(track)
		fmt.Fprintf(w, "track %d: %d notes\n", i, len(notes))
		for _, n := range notes {
			// NOTE: excerpt times are relative to --from
			fmt.Fprintf(w, "  %v\n", n)
		}
	}
	return nil
}
