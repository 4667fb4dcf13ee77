// Package ui provides the Bubbletea terminal user interface for tracksaw
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tracksaw/internal/tracklist"
)

// TrackStatus represents the split state of a single track
type TrackStatus int

const (
	StatusQueued TrackStatus = iota
	StatusMatched
	StatusExported
	StatusUnmatched
)

// TrackProgress tracks progress for a single track
type TrackProgress struct {
	Track  tracklist.Track
	Status TrackStatus

	// Boundary accepted for this track, in original-file coordinates
	Begin int64
	End   int64

	// Export results
	OutputPath     string
	DBFS           float64
	DurationMillis int64
}

// SkippedSilence records a rejected silence interval for display
type SkippedSilence struct {
	Begin int64
	End   int64
}

// Model is the Bubbletea model for the split UI
type Model struct {
	// Audio file being split
	InputPath string

	// Track queue
	Tracks   []TrackProgress
	Exported int

	// Silences rejected as too early for the next track
	Skipped []SkippedSilence

	// Global state
	StartTime time.Time
	Done      bool
	Err       error

	// Channel for receiving progress updates from the pipeline
	ProgressChan chan tea.Msg

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model for the given audio file and tracklist
func NewModel(inputPath string, tracks []tracklist.Track) Model {
	queue := make([]TrackProgress, len(tracks))
	for i, t := range tracks {
		queue[i] = TrackProgress{Track: t, Status: StatusQueued}
	}

	return Model{
		InputPath:    inputPath,
		Tracks:       queue,
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 100), // Buffered channel
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForProgress(m.ProgressChan)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TrackParsingMsg:
		// Queue entries are built up front; nothing to update here.
		return m, waitForProgress(m.ProgressChan)

	case BoundaryMsg:
		if i := m.trackIndex(msg.Track); i >= 0 {
			m.Tracks[i].Status = StatusMatched
			m.Tracks[i].Begin = msg.Begin
			m.Tracks[i].End = msg.End
		}
		return m, waitForProgress(m.ProgressChan)

	case SkipMsg:
		m.Skipped = append(m.Skipped, SkippedSilence{Begin: msg.Begin, End: msg.End})
		return m, waitForProgress(m.ProgressChan)

	case UnmatchedMsg:
		for _, t := range msg.Tracks {
			if i := m.trackIndex(t); i >= 0 {
				m.Tracks[i].Status = StatusUnmatched
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case ExportedMsg:
		if i := m.trackIndex(msg.Track); i >= 0 {
			m.Tracks[i].Status = StatusExported
			m.Tracks[i].OutputPath = msg.Path
			m.Tracks[i].DBFS = msg.DBFS
			m.Tracks[i].DurationMillis = msg.DurationMillis
			m.Exported++
		}
		return m, waitForProgress(m.ProgressChan)

	case DoneMsg:
		m.Done = true
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderSplitView(m)
}

// trackIndex finds a queue entry by track number and title.
func (m Model) trackIndex(t tracklist.Track) int {
	for i, tp := range m.Tracks {
		if tp.Track.Number == t.Number && tp.Track.Title == t.Title {
			return i
		}
	}
	return -1
}

// waitForProgress creates a command that waits for progress messages
func waitForProgress(progressChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-progressChan
	}
}
