package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

const maxMetricTicks = 1<<15 - 1

// Build encodes every track on its own time cursor and attaches them to a
// new SMF. Nothing is written anywhere.
func Build(ticksPerBeat int, tracks ...TrackSpec) (*smf.SMF, error) {
	if ticksPerBeat <= 0 || ticksPerBeat > maxMetricTicks {
		return nil, errors.Errorf("ticks per beat %d does not fit metric ticks", ticksPerBeat)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	for i, spec := range tracks {
		events, err := EncodeTrack(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "track %d (%v)", i, spec.Name)
		}

		var tr smf.Track
		if spec.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(spec.Name))
		}
		for _, e := range events {
			tr.Add(e.Delta, e.Message())
		}
		tr.Close(0)

		if err := s.Add(tr); err != nil {
			return nil, errors.Wrapf(err, "could not add track %d", i)
		}
	}
	return s, nil
}

func Bytes(ticksPerBeat int, tracks ...TrackSpec) ([]byte, error) {
	s, err := Build(ticksPerBeat, tracks...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not encode midi")
	}
	return buf.Bytes(), nil
}

// WriteFile builds the whole file in memory first, so a bad track never
// leaves a file behind, then writes it in one go.
func WriteFile(path string, ticksPerBeat int, tracks ...TrackSpec) (err error) {
	s, err := Build(ticksPerBeat, tracks...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "could not close %v", path)
		}
	}()

	if _, err = s.WriteTo(f); err != nil {
		return errors.Wrapf(err, "write failed for %v", path)
	}
	return nil
}
