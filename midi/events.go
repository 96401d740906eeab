package midi

import (
	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"golang.org/x/exp/slices"
)

var (
	ErrNegativeDelta = errors.New("negative delta time")
	ErrPitchRange    = errors.New("pitch out of MIDI range")
)

// Event is a note start or stop with both its absolute tick and the delta
// to the previous event of the same track.
type Event struct {
	Abs      int
	Delta    uint32
	On       bool
	Channel  uint8
	Key      uint8
	Velocity uint8
}

func (e Event) Message() midi.Message {
	if e.On {
		return midi.NoteOn(e.Channel, e.Key, e.Velocity)
	}
	return midi.NoteOffVelocity(e.Channel, e.Key, e.Velocity)
}

// TrackSpec is one output track: absolute-time notes and how to voice them.
type TrackSpec struct {
	Name     string
	Notes    model.Notes
	Channel  uint8
	Velocity uint8
}

func MelodyTrack(notes model.Notes) TrackSpec {
	return TrackSpec{Name: "melody", Notes: notes, Velocity: constants.MelodyVelocity}
}

func AccompanimentTrack(notes model.Notes) TrackSpec {
	return TrackSpec{Name: "accompaniment", Notes: notes, Velocity: constants.AccompanimentVelocity}
}

// EncodeTrack expands notes into start/stop events, orders them by time
// (equal times keep emission order) and fills in the deltas.
func EncodeTrack(spec TrackSpec) ([]Event, error) {
	events := make([]Event, 0, 2*len(spec.Notes))
	for _, n := range spec.Notes {
		if n.Pitch < constants.MinPitch || n.Pitch > constants.MaxPitch {
			return nil, errors.Wrapf(ErrPitchRange, "%v at tick %v", n.Pitch, n.Time)
		}
		key := uint8(n.Pitch)
		events = append(events,
			Event{Abs: n.Time, On: true, Channel: spec.Channel, Key: key, Velocity: spec.Velocity},
			Event{Abs: n.End(), On: false, Channel: spec.Channel, Key: key, Velocity: spec.Velocity},
		)
	}

	slices.SortStableFunc(events, func(a, b Event) bool {
		return a.Abs < b.Abs
	})

	if err := AssignDeltas(events); err != nil {
		return nil, err
	}
	return events, nil
}

// AssignDeltas sets every Delta from the Abs times, the cursor starting at 0.
// Events must already be in time order.
func AssignDeltas(events []Event) error {
	var cursor int
	for i := range events {
		delta := events[i].Abs - cursor
		if delta < 0 {
			return errors.Wrapf(ErrNegativeDelta, "event %d at tick %d follows tick %d", i, events[i].Abs, cursor)
		}
		events[i].Delta = uint32(delta)
		cursor = events[i].Abs
	}
	return nil
}

// AbsoluteTimes sums deltas back into absolute ticks.
func AbsoluteTimes(events []Event) []int {
	res := make([]int, len(events))
	var cursor int
	for i, e := range events {
		cursor += int(e.Delta)
		res[i] = cursor
	}
	return res
}
