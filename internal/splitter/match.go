// Package splitter carves an album waveform into per-track segments. The
// boundary matcher walks the detected silence intervals left to right,
// using each track's expected duration (within a tolerance) to tell real
// track boundaries apart from in-track pauses. Matched segments are then
// trimmed and optionally loudness-normalized.
package splitter

import (
	"tracksaw/internal/silence"
	"tracksaw/internal/tracklist"
	"tracksaw/internal/wave"
)

// Segment is one carved-out track: the trimmed audio and the tracklist
// entry it was matched to.
type Segment struct {
	Audio *wave.Buffer
	Track tracklist.Track
}

// MatchConfig controls boundary matching.
type MatchConfig struct {
	// ToleranceMillis is the slack allowed between a track's expected
	// duration and the end of the silence accepted as its boundary. A
	// silence qualifies once its end time reaches expected - tolerance.
	ToleranceMillis int64

	// TrimThresholdDBFS and SeekStepMillis parameterize the trim applied
	// to each carved segment.
	TrimThresholdDBFS float64
	SeekStepMillis    int64

	// ReportOffsetMillis is added to all times passed to the Reporter,
	// so diagnostics can show positions in the original file when the
	// album lead-in was stripped before matching.
	ReportOffsetMillis int64

	Reporter Reporter
}

// Match splits the album waveform at the silence intervals that line up
// with the tracklist's expected durations. Intervals must be ascending and
// non-overlapping, in the album's own coordinates.
//
// The scan is a single forward pass: a running offset tracks how much
// audio has been cut away, each interval's end is compared offset-relative
// against the current track's expected duration, and the cursor never
// rewinds. The first qualifying interval wins. A synthetic zero-length
// interval at the end of the waveform guarantees the last track is closed
// by end-of-audio even when no trailing silence was detected.
//
// Tracks left over when the intervals run out receive no segment; they are
// reported through the TracksUnmatched event rather than failing the run.
func Match(album *wave.Buffer, intervals []silence.Interval, tracks []tracklist.Track, cfg MatchConfig) []Segment {
	rep := cfg.Reporter
	if rep == nil {
		rep = NopReporter{}
	}

	total := album.DurationMillis()
	seq := make([]silence.Interval, 0, len(intervals)+1)
	seq = append(seq, intervals...)
	seq = append(seq, silence.Interval{Start: total, End: total})

	var (
		segments  []Segment
		unmatched []tracklist.Track
		offset    int64
		cursor    int
	)

	for _, track := range tracks {
		rep.TrackParsing(track)

		matched := false
		for cursor < len(seq) {
			iv := seq[cursor]
			cursor++

			if track.DurationMillis-cfg.ToleranceMillis <= iv.End-offset {
				// Cut excludes the silence itself; trimming catches any
				// partial silence the locator's step size left behind.
				cut := album.Slice(offset, iv.Start)
				trimmed, _, _ := Trim(cut, cfg.TrimThresholdDBFS, cfg.SeekStepMillis)
				segments = append(segments, Segment{Audio: trimmed, Track: track})
				rep.BoundaryFound(track, iv.Start+cfg.ReportOffsetMillis, iv.End+cfg.ReportOffsetMillis)
				offset = iv.End
				matched = true
				break
			}

			rep.SilenceSkipped(iv.Start+cfg.ReportOffsetMillis, iv.End+cfg.ReportOffsetMillis)
		}

		if !matched {
			unmatched = append(unmatched, track)
		}
	}

	if len(unmatched) > 0 {
		rep.TracksUnmatched(unmatched)
	}

	return segments
}
