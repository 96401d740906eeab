// Package parse turns the text forms of chord progressions and motifs into
// records. The engine itself never sees these strings.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/motifgen/model"
)

// ParsingError reports malformed user input.
type ParsingError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("could not parse %q: %s", e.Input, e.Reason)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

var (
	motifCharset = regexp.MustCompile(`^[\d\s,()]*$`)
	motifPair    = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*\)`)
)

// ChordProgression splits "C, G, Am" into names, skipping empty entries.
func ChordProgression(text string) []string {
	var res []string
	for _, c := range strings.Split(text, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			res = append(res, c)
		}
	}
	return res
}

// Motif reads "(64, 480), (62, 240)" into (pitch, duration) pairs.
func Motif(text string) ([]model.MotifNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !motifCharset.MatchString(text) {
		return nil, &ParsingError{Input: text, Reason: "only digits, commas, parentheses and spaces are allowed"}
	}

	var res []model.MotifNote
	for _, m := range motifPair.FindAllStringSubmatch(text, -1) {
		pitch, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &ParsingError{Input: text, Reason: "bad pitch", Err: err}
		}
		duration, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &ParsingError{Input: text, Reason: "bad duration", Err: err}
		}
		res = append(res, model.MotifNote{Pitch: pitch, Duration: duration})
	}
	if len(res) == 0 {
		return nil, &ParsingError{Input: text, Reason: "no (pitch, duration) pairs found"}
	}
	return res, nil
}
