package model

// Note is one pitched event. Time is relative to the measure start while a
// measure is being transformed and absolute once the piece is assembled.
type Note struct {
	Pitch    int `json:"pitch" yaml:"pitch"`
	Time     int `json:"time" yaml:"time"`
	Duration int `json:"duration" yaml:"duration"`
}

// End is the tick right after the note stops sounding.
func (n Note) End() int {
	return n.Time + n.Duration
}

type MotifNote struct {
	Pitch    int `json:"pitch" yaml:"pitch"`
	Duration int `json:"duration" yaml:"duration"`
}

type Notes = []Note

// Clone returns a fresh slice so callers never share backing arrays.
func Clone(notes Notes) Notes {
	res := make(Notes, len(notes))
	copy(res, notes)
	return res
}

// MeasureEnd is the latest note end in the measure, 0 when empty.
func MeasureEnd(notes Notes) int {
	var end int
	for _, n := range notes {
		if n.End() > end {
			end = n.End()
		}
	}
	return end
}

// Offset shifts every note by ticks.
func Offset(notes Notes, ticks int) Notes {
	res := Clone(notes)
	for i := range res {
		res[i].Time += ticks
	}
	return res
}

// BaseMeasure lays the motif out contiguously from tick 0.
func BaseMeasure(motif []MotifNote) Notes {
	res := make(Notes, 0, len(motif))
	var t int
	for _, m := range motif {
		res = append(res, Note{Pitch: m.Pitch, Time: t, Duration: m.Duration})
		t += m.Duration
	}
	return res
}
