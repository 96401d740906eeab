package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies every track from fromTick on, keeping at most maxNotes note
// events (starts and stops) per track; 0 means no limit. Non-note events
// before fromTick are kept at the start so track names survive.
func Excerpt(s *smf.SMF, fromTick uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var lastTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			msg := midi.Message(evt.Message)
			switch {
			case msg.Is(midi.NoteOnMsg), msg.Is(midi.NoteOffMsg):
				if absTicks < fromTick {
					continue
				}
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
				newTrack.Add(uint32(absTicks-fromTick-lastTicks), evt.Message)
				lastTicks = absTicks - fromTick
				numNoteOnOff += 1
			case isEndOfTrack(evt.Message):
				// Close adds a fresh one
			case absTicks < fromTick:
				newTrack.Add(0, evt.Message)
			}
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}

func isEndOfTrack(msg []byte) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}
