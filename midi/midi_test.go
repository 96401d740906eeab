package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func melody() model.Notes {
	return model.Notes{
		{Pitch: 60, Time: 0, Duration: 480},
		{Pitch: 62, Time: 480, Duration: 480},
		{Pitch: 64, Time: 960, Duration: 480},
	}
}

func chords() model.Notes {
	return model.Notes{
		{Pitch: 48, Time: 0, Duration: 1920},
		{Pitch: 52, Time: 0, Duration: 1920},
		{Pitch: 55, Time: 0, Duration: 1920},
		{Pitch: 43, Time: 1920, Duration: 1920},
	}
}

func deltas(events []Event) []uint32 {
	var res []uint32
	for _, e := range events {
		res = append(res, e.Delta)
	}
	return res
}

func TestEncodeTrack(t *testing.T) {
	events, err := EncodeTrack(TrackSpec{Notes: melody()[:2], Velocity: 64})
	require.NoError(t, err)

	assert.Equal(t, []Event{
		{Abs: 0, Delta: 0, On: true, Key: 60, Velocity: 64},
		{Abs: 480, Delta: 480, On: false, Key: 60, Velocity: 64},
		{Abs: 480, Delta: 0, On: true, Key: 62, Velocity: 64},
		{Abs: 960, Delta: 480, On: false, Key: 62, Velocity: 64},
	}, events)
}

func TestEncodeTrackSortsStably(t *testing.T) {
	events, err := EncodeTrack(AccompanimentTrack(chords()))
	require.NoError(t, err)

	var keys []uint8
	var ons []bool
	for _, e := range events {
		keys = append(keys, e.Key)
		ons = append(ons, e.On)
	}

	assert := assert.New(t)
	assert.Equal([]uint8{48, 52, 55, 48, 52, 55, 43, 43}, keys)
	assert.Equal([]bool{true, true, true, false, false, false, true, false}, ons)
	assert.Equal([]uint32{0, 0, 0, 1920, 0, 0, 0, 1920}, deltas(events))
	assert.Equal(uint8(40), events[0].Velocity)
}

func TestEncodeTrackUnorderedInput(t *testing.T) {
	notes := model.Notes{{Pitch: 64, Time: 960, Duration: 480}, {Pitch: 60, Time: 0, Duration: 480}}
	events, err := EncodeTrack(MelodyTrack(notes))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 480, 480, 480}, deltas(events))
}

func TestDeltasSumToLastEvent(t *testing.T) {
	events, err := EncodeTrack(MelodyTrack(melody()))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(int64(events[len(events)-1].Abs), util.Sum(deltas(events)))
	assert.Equal(int64(1440), util.Sum(deltas(events)))
}

func TestReencodingIsIdempotent(t *testing.T) {
	events, err := EncodeTrack(MelodyTrack(melody()))
	require.NoError(t, err)

	again := make([]Event, len(events))
	copy(again, events)
	for i, abs := range AbsoluteTimes(again) {
		again[i].Abs = abs
		again[i].Delta = 0
	}
	require.NoError(t, AssignDeltas(again))
	assert.Equal(t, events, again)
}

func TestNegativeDeltaIsRejected(t *testing.T) {
	events := []Event{{Abs: 480}, {Abs: 0}}
	err := AssignDeltas(events)
	assert.True(t, errors.Is(err, ErrNegativeDelta))

	_, err = EncodeTrack(MelodyTrack(model.Notes{{Pitch: 60, Time: -10, Duration: 5}}))
	assert.True(t, errors.Is(err, ErrNegativeDelta))
}

func TestPitchOutOfRange(t *testing.T) {
	_, err := EncodeTrack(MelodyTrack(model.Notes{{Pitch: 128, Time: 0, Duration: 480}}))
	assert.True(t, errors.Is(err, ErrPitchRange))

	_, err = EncodeTrack(MelodyTrack(model.Notes{{Pitch: -1, Time: 0, Duration: 480}}))
	assert.True(t, errors.Is(err, ErrPitchRange))
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, WriteFile(path, 480, MelodyTrack(melody()), AccompanimentTrack(chords())))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(480, TicksPerBeat(s))
	require.Len(t, s.Tracks, 2)
	assert.Equal(melody(), Notes(s.Tracks[0]))
	assert.Equal(chords(), Notes(s.Tracks[1]))

	decoded := DecodeNotes(s.Tracks[1])
	assert.Equal(uint8(40), decoded[0].Velocity)
	assert.Equal(uint8(64), DecodeNotes(s.Tracks[0])[0].Velocity)
}

func TestWriteFileSingleTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solo.mid")
	require.NoError(t, WriteFile(path, 96, MelodyTrack(melody())))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)
	assert.Equal(t, 96, TicksPerBeat(s))
}

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.mid")
	err := WriteFile(path, 480, MelodyTrack(model.Notes{{Pitch: 200, Time: 0, Duration: 480}}))
	assert.True(t, errors.Is(err, ErrPitchRange))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildRejectsBadResolution(t *testing.T) {
	_, err := Build(0, MelodyTrack(melody()))
	assert.Error(t, err)
	_, err = Build(40000, MelodyTrack(melody()))
	assert.Error(t, err)
}

func TestReadMidiRejectsGarbage(t *testing.T) {
	_, err := ReadMidi([]byte("not a midi file"))
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	data, err := Bytes(480, MelodyTrack(melody()))
	require.NoError(t, err)
	s, err := ReadMidi(data)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(model.Notes{
		{Pitch: 62, Time: 0, Duration: 480},
		{Pitch: 64, Time: 480, Duration: 480},
	}, Notes(Excerpt(s, 480, 0).Tracks[0]))
	assert.Equal(model.Notes{{Pitch: 60, Time: 0, Duration: 480}}, Notes(Excerpt(s, 0, 2).Tracks[0]))
}

func TestStopEventsKeepVelocity(t *testing.T) {
	events, err := EncodeTrack(MelodyTrack(melody()))
	require.NoError(t, err)

	var ch, key, vel uint8
	off := events[1].Message()
	require.True(t, off.GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(60), key)
	assert.Equal(t, uint8(64), vel)
	assert.True(t, off.GetNoteEnd(&ch, &key))
}
