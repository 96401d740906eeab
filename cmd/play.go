package cmd

import (
	"time"

	"github.com/jsphweid/motifgen/logger"
	"github.com/jsphweid/motifgen/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

var (
	playPort int
	playBPM  float64
)

func init() {
	playCmd.Flags().IntVar(&playPort, "port", 0, "MIDI out port number")
	playCmd.Flags().Float64Var(&playBPM, "bpm", 100, "tempo in beats per minute")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <file.mid>",
	Short: "Plays a MIDI file on a MIDI out port",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		return play(s, playPort, playBPM)
	},
}

type timedMessage struct {
	tick int
	msg  gomidi.Message
}

// schedule merges the note events of every track into one tick ordered list.
func schedule(s *smf.SMF) []timedMessage {
	var res []timedMessage
	for _, track := range s.Tracks {
		var absTicks int
		for _, evt := range track {
			absTicks += int(evt.Delta)
			msg := gomidi.Message(evt.Message)
			if msg.Is(gomidi.NoteOnMsg) || msg.Is(gomidi.NoteOffMsg) {
				res = append(res, timedMessage{tick: absTicks, msg: msg})
			}
		}
	}
	slices.SortStableFunc(res, func(a, b timedMessage) bool {
		return a.tick < b.tick
	})
	return res
}

func tickDuration(bpm float64, ticksPerBeat int) (time.Duration, error) {
	if bpm <= 0 {
		return 0, errors.Errorf("bpm must be positive, got %v", bpm)
	}
	// SMPTE timed files have no ticks per beat
	if ticksPerBeat <= 0 {
		return 0, errors.Errorf("only metric time is supported, got %d ticks per beat", ticksPerBeat)
	}
	return time.Duration(float64(time.Minute) / (bpm * float64(ticksPerBeat))), nil
}

func play(s *smf.SMF, port int, bpm float64) error {
	tick, err := tickDuration(bpm, midi.TicksPerBeat(s))
	if err != nil {
		return err
	}
	defer gomidi.CloseDriver()
	out, err := gomidi.OutPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI out port %d", port)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return errors.Wrap(err, "could not open MIDI out port")
	}

	events := schedule(s)
	logger.Info("Playing", logger.Fields{"port": out.String(), "events": len(events), "bpm": bpm})

	var last int
	for _, e := range events {
		time.Sleep(time.Duration(e.tick-last) * tick)
		last = e.tick
		if err := send(e.msg); err != nil {
			return errors.Wrap(err, "could not send MIDI message")
		}
	}
	return nil
}
