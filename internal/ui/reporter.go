package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tracksaw/internal/tracklist"
)

// Reporter forwards pipeline events to the UI as Bubbletea messages.
// It implements splitter.Reporter and is safe to call from the
// goroutine running the split while the program loop is active.
type Reporter struct {
	ch chan<- tea.Msg
}

// NewReporter wraps the model's progress channel.
func NewReporter(ch chan<- tea.Msg) *Reporter {
	return &Reporter{ch: ch}
}

func (r *Reporter) TrackParsing(t tracklist.Track) {
	r.ch <- TrackParsingMsg{Track: t}
}

func (r *Reporter) BoundaryFound(t tracklist.Track, begin, end int64) {
	r.ch <- BoundaryMsg{Track: t, Begin: begin, End: end}
}

func (r *Reporter) SilenceSkipped(begin, end int64) {
	r.ch <- SkipMsg{Begin: begin, End: end}
}

func (r *Reporter) TracksUnmatched(tracks []tracklist.Track) {
	r.ch <- UnmatchedMsg{Tracks: tracks}
}

func (r *Reporter) SegmentExported(t tracklist.Track, path string, dbfs float64, durMillis int64) {
	r.ch <- ExportedMsg{Track: t, Path: path, DBFS: dbfs, DurationMillis: durMillis}
}

// Finish signals completion to the UI.
func (r *Reporter) Finish(err error) {
	r.ch <- DoneMsg{Err: err}
}
