package theory

import "github.com/jsphweid/motifgen/util"

const (
	minOctaveOffset = -2
	maxOctaveOffset = 2
)

// SnapToScale moves pitch to the nearest anchor+12k for k in -2..2.
// Equal distances keep the candidate found first: anchors in listed order,
// octaves from low to high.
func SnapToScale(pitch int, anchors []int) int {
	return nearest(pitch, anchors)
}

// SnapToChord is SnapToScale against chord tones. An empty chord leaves
// pitch alone.
func SnapToChord(pitch int, tones []int) int {
	if len(tones) == 0 {
		return pitch
	}
	return nearest(pitch, tones)
}

func nearest(pitch int, anchors []int) int {
	best := pitch
	bestDist := -1
	for _, anchor := range anchors {
		for oct := minOctaveOffset; oct <= maxOctaveOffset; oct++ {
			candidate := anchor + 12*oct
			dist := util.Abs(pitch - candidate)
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = candidate
			}
		}
	}
	return best
}
