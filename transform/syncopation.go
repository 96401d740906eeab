package transform

import (
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/util"
)

func push(notes model.Notes, eighth int) model.Notes {
	res := model.Clone(notes)
	for i := range res {
		res[i].Time = util.Max(res[i].Time-eighth, 0)
	}
	return res
}

// pull delays every note by an eighth without letting anything ring past
// the end of the measure.
func pull(notes model.Notes, eighth int) model.Notes {
	end := model.MeasureEnd(notes)
	res := make(model.Notes, 0, len(notes))
	for _, n := range notes {
		n.Time += eighth
		if n.End() > end {
			n.Duration = end - n.Time
		}
		if n.Duration <= 0 {
			continue
		}
		res = append(res, n)
	}
	return res
}
