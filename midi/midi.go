package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jsphweid/motifgen/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(dat)
}

func ReadMidi(dat []byte) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// TicksPerBeat is 0 for SMPTE timed files.
func TicksPerBeat(s *smf.SMF) int {
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		return int(mt)
	}
	return 0
}

// DecodedNote is a note read back from a track, velocity included.
type DecodedNote struct {
	model.Note
	Channel  uint8
	Velocity uint8
}

func (n DecodedNote) String() string {
	return fmt.Sprintf("ch%d key %3d vel %3d @%-6d dur %d", n.Channel, n.Pitch, n.Velocity, n.Time, n.Duration)
}

type noteKey struct {
	channel uint8
	key     uint8
}

// DecodeNotes pairs note starts with their ends (first in, first out per
// channel and key) and returns notes in the order they started. Notes still
// sounding at the end of the track are dropped.
func DecodeNotes(track smf.Track) []DecodedNote {
	var res []DecodedNote
	open := make(map[noteKey][]int)
	var absTicks int
	for _, evt := range track {
		absTicks += int(evt.Delta)
		msg := midi.Message(evt.Message)
		var channel, key, velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			k := noteKey{channel, key}
			open[k] = append(open[k], len(res))
			res = append(res, DecodedNote{
				Note:     model.Note{Pitch: int(key), Time: absTicks, Duration: -1},
				Channel:  channel,
				Velocity: velocity,
			})
		case msg.GetNoteEnd(&channel, &key):
			k := noteKey{channel, key}
			if len(open[k]) == 0 {
				continue
			}
			i := open[k][0]
			open[k] = open[k][1:]
			res[i].Duration = absTicks - res[i].Time
		}
	}

	closed := res[:0]
	for _, n := range res {
		if n.Duration >= 0 {
			closed = append(closed, n)
		}
	}
	return closed
}

// Notes strips velocity and channel from DecodeNotes.
func Notes(track smf.Track) model.Notes {
	decoded := DecodeNotes(track)
	res := make(model.Notes, len(decoded))
	for i, n := range decoded {
		res[i] = n.Note
	}
	return res
}
