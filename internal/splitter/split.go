package splitter

import (
	"tracksaw/internal/silence"
	"tracksaw/internal/tracklist"
	"tracksaw/internal/wave"
)

// Options configures a full split run.
type Options struct {
	ToleranceMillis  int64
	ThresholdDBFS    float64 // silence threshold for detection and trimming
	MinSilenceMillis int64
	SeekStepMillis   int64

	// TargetDBFS, when non-nil, normalizes the emitted segments to this
	// average loudness: album-average mode by default, per-track when
	// PerTrack is set.
	TargetDBFS *float64
	PerTrack   bool

	Reporter Reporter
}

// Split runs the whole pipeline on a decoded album waveform: strip the
// album's own lead-in and tail silence, locate the interior silent
// intervals, match them against the tracklist, and normalize the result
// when a loudness target was requested. Diagnostics are reported in the
// original file's time coordinates.
func Split(album *wave.Buffer, tracks []tracklist.Track, opts Options) []Segment {
	if opts.ThresholdDBFS == 0 {
		opts.ThresholdDBFS = silence.DefaultThresholdDBFS
	}
	if opts.MinSilenceMillis <= 0 {
		opts.MinSilenceMillis = silence.DefaultMinLenMillis
	}
	if opts.SeekStepMillis <= 0 {
		opts.SeekStepMillis = silence.DefaultSeekStepMillis
	}

	stripped, leading, _ := Trim(album, opts.ThresholdDBFS, opts.SeekStepMillis)

	intervals := silence.Detect(stripped, silence.Params{
		ThresholdDBFS:  opts.ThresholdDBFS,
		MinLenMillis:   opts.MinSilenceMillis,
		SeekStepMillis: opts.SeekStepMillis,
	})

	segments := Match(stripped, intervals, tracks, MatchConfig{
		ToleranceMillis:    opts.ToleranceMillis,
		TrimThresholdDBFS:  opts.ThresholdDBFS,
		SeekStepMillis:     opts.SeekStepMillis,
		ReportOffsetMillis: leading,
		Reporter:           opts.Reporter,
	})

	if opts.TargetDBFS != nil {
		if opts.PerTrack {
			segments = NormalizePerTrack(segments, *opts.TargetDBFS)
		} else {
			segments = NormalizeAlbumAverage(segments, *opts.TargetDBFS)
		}
	}

	return segments
}
