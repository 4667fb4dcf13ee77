package ui

import (
	"tracksaw/internal/tracklist"
)

// TrackParsingMsg announces a track read from the tracklist.
type TrackParsingMsg struct {
	Track tracklist.Track
}

// BoundaryMsg indicates a silence interval was accepted as the cut
// point for a track.
type BoundaryMsg struct {
	Track tracklist.Track
	Begin int64
	End   int64
}

// SkipMsg indicates a silence interval was rejected as too early.
type SkipMsg struct {
	Begin int64
	End   int64
}

// UnmatchedMsg carries tracks left over after the audio ran out.
type UnmatchedMsg struct {
	Tracks []tracklist.Track
}

// ExportedMsg indicates a track file has been written.
type ExportedMsg struct {
	Track          tracklist.Track
	Path           string
	DBFS           float64
	DurationMillis int64
}

// DoneMsg indicates the whole split finished. Err is nil on success.
type DoneMsg struct {
	Err error
}
