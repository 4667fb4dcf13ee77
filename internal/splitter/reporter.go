package splitter

import "tracksaw/internal/tracklist"

// Reporter receives structured progress events from the split pipeline.
// Implementations render them however the host wants: styled console
// output, TUI messages, or log files. Events are informational and never
// abort a run.
type Reporter interface {
	// TrackParsing fires when the matcher starts looking for a track's
	// boundary.
	TrackParsing(t tracklist.Track)

	// BoundaryFound fires when a silent interval is accepted as a track's
	// end. Times are milliseconds in the coordinates of the album waveform
	// handed to Split.
	BoundaryFound(t tracklist.Track, beginMillis, endMillis int64)

	// SilenceSkipped fires for an in-track silent interval that did not
	// satisfy the current track's expected duration.
	SilenceSkipped(beginMillis, endMillis int64)

	// TracksUnmatched fires once, after matching, when the silence
	// intervals ran out before every track received a segment.
	TracksUnmatched(tracks []tracklist.Track)

	// SegmentExported fires after a segment has been written out.
	SegmentExported(t tracklist.Track, path string, dbfs float64, durMillis int64)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) TrackParsing(tracklist.Track)                            {}
func (NopReporter) BoundaryFound(tracklist.Track, int64, int64)             {}
func (NopReporter) SilenceSkipped(int64, int64)                             {}
func (NopReporter) TracksUnmatched([]tracklist.Track)                       {}
func (NopReporter) SegmentExported(tracklist.Track, string, float64, int64) {}
