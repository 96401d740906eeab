package transform

import "github.com/jsphweid/motifgen/model"

// retrograde plays the notes backwards, rhythm included, packed from 0.
func retrograde(notes model.Notes) model.Notes {
	res := make(model.Notes, 0, len(notes))
	var t int
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		res = append(res, model.Note{Pitch: n.Pitch, Time: t, Duration: n.Duration})
		t += n.Duration
	}
	return res
}
