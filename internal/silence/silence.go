// Package silence locates silent regions in a waveform by scanning
// fixed-size windows against a dBFS threshold.
package silence

import (
	"tracksaw/internal/wave"
)

// Default detection parameters.
const (
	DefaultThresholdDBFS  = -70.0
	DefaultMinLenMillis   = 100
	DefaultSeekStepMillis = 20
)

// Interval is a silent region [Start, End) in milliseconds, relative to
// the waveform it was detected in.
type Interval struct {
	Start int64
	End   int64
}

// Len returns the interval length in milliseconds.
func (i Interval) Len() int64 { return i.End - i.Start }

// Params controls silence detection.
type Params struct {
	ThresholdDBFS  float64 // amplitude below which a window counts as silent
	MinLenMillis   int64   // shortest run of silent windows reported
	SeekStepMillis int64   // window granularity
}

// DefaultParams returns the detection defaults (-70 dBFS, 100 ms, 20 ms).
func DefaultParams() Params {
	return Params{
		ThresholdDBFS:  DefaultThresholdDBFS,
		MinLenMillis:   DefaultMinLenMillis,
		SeekStepMillis: DefaultSeekStepMillis,
	}
}

// DetectLeading returns the length in milliseconds of the silent run at the
// start of the buffer. The scan advances in steps; a fully silent buffer
// reports its whole duration.
func DetectLeading(b *wave.Buffer, thresholdDBFS float64, stepMillis int64) int64 {
	if stepMillis <= 0 {
		stepMillis = DefaultSeekStepMillis
	}
	dur := b.DurationMillis()
	var pos int64
	for pos < dur {
		end := pos + stepMillis
		if end > dur {
			end = dur
		}
		if b.Slice(pos, end).DBFS() >= thresholdDBFS {
			return pos
		}
		pos = end
	}
	return dur
}

// Detect returns the interior silent intervals of the buffer in ascending,
// non-overlapping order. Runs shorter than MinLenMillis are not reported.
func Detect(b *wave.Buffer, p Params) []Interval {
	if p.SeekStepMillis <= 0 {
		p.SeekStepMillis = DefaultSeekStepMillis
	}
	dur := b.DurationMillis()

	var intervals []Interval
	var runStart int64 = -1 // -1 when not inside a silent run

	flush := func(end int64) {
		if runStart >= 0 && end-runStart >= p.MinLenMillis {
			intervals = append(intervals, Interval{Start: runStart, End: end})
		}
		runStart = -1
	}

	for pos := int64(0); pos < dur; pos += p.SeekStepMillis {
		end := pos + p.SeekStepMillis
		if end > dur {
			end = dur
		}
		silent := b.Slice(pos, end).DBFS() < p.ThresholdDBFS
		if silent && runStart < 0 {
			runStart = pos
		} else if !silent {
			flush(pos)
		}
	}
	flush(dur)

	return intervals
}
