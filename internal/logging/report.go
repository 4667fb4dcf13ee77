package logging

import (
	"fmt"
	"strings"
	"time"

	"tracksaw/internal/format"
	"tracksaw/internal/silence"
	"tracksaw/internal/tracklist"
)

// Boundary records a silence interval accepted as a track's cut point,
// in original-file coordinates.
type Boundary struct {
	Track tracklist.Track
	Begin int64
	End   int64
}

// TrackResult records an exported track's measured properties.
type TrackResult struct {
	Track          tracklist.Track
	DurationMillis int64
	DBFS           float64
	GainDB         float64
	Path           string
}

// Report collects everything that happened during a split into a
// printable summary.
type Report struct {
	InputPath     string
	TracklistPath string

	// Parameters the split ran with
	ThresholdDBFS   float64
	MinSilenceMill  int64
	SeekStepMillis  int64
	ToleranceMillis int64
	TargetDBFS      *float64 // nil when normalization was off
	PerTrack        bool

	// Album-level measurements
	AlbumDurationMillis int64
	LeadingTrimMillis   int64
	TrailingTrimMillis  int64

	Boundaries []Boundary
	Skipped    []silence.Interval
	Tracks     []TrackResult
	Unmatched  []tracklist.Track

	Elapsed time.Duration
}

// String renders the full report.
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString("Split Report\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Input:     %s\n", r.InputPath))
	if r.TracklistPath != "" {
		sb.WriteString(fmt.Sprintf("Tracklist: %s\n", r.TracklistPath))
	}
	sb.WriteString(fmt.Sprintf("Duration:  %s (trimmed %d ms leading, %d ms trailing)\n",
		format.Duration(r.AlbumDurationMillis, false),
		r.LeadingTrimMillis, r.TrailingTrimMillis))
	sb.WriteString("\n")

	sb.WriteString(r.renderParameters())
	sb.WriteString("\n")

	if len(r.Boundaries) > 0 {
		sb.WriteString("Boundaries\n")
		sb.WriteString(strings.Repeat("-", 60))
		sb.WriteString("\n")
		sb.WriteString(r.renderBoundaries())
		sb.WriteString("\n")
	}

	if len(r.Skipped) > 0 {
		sb.WriteString("Skipped Silences\n")
		sb.WriteString(strings.Repeat("-", 60))
		sb.WriteString("\n")
		for _, iv := range r.Skipped {
			sb.WriteString(fmt.Sprintf("  %s - %s (%d ms)\n",
				format.Duration(iv.Start, false), format.Duration(iv.End, false), iv.Len()))
		}
		sb.WriteString("\n")
	}

	if len(r.Tracks) > 0 {
		sb.WriteString("Exported Tracks\n")
		sb.WriteString(strings.Repeat("-", 60))
		sb.WriteString("\n")
		sb.WriteString(r.renderTracks())
		sb.WriteString("\n")
	}

	if len(r.Unmatched) > 0 {
		sb.WriteString("Unmatched Tracks\n")
		sb.WriteString(strings.Repeat("-", 60))
		sb.WriteString("\n")
		for _, t := range r.Unmatched {
			sb.WriteString(fmt.Sprintf("  %02d. %s (%s expected)\n",
				t.Number, t.Title, format.Duration(t.DurationMillis, true)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Completed in %.2fs\n", r.Elapsed.Seconds()))

	return sb.String()
}

func (r *Report) renderParameters() string {
	var sb strings.Builder
	sb.WriteString("Parameters\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Silence threshold:  %s dBFS\n", formatMetric(r.ThresholdDBFS, 1)))
	sb.WriteString(fmt.Sprintf("  Min silence length: %d ms\n", r.MinSilenceMill))
	sb.WriteString(fmt.Sprintf("  Seek step:          %d ms\n", r.SeekStepMillis))
	sb.WriteString(fmt.Sprintf("  Tolerance:          %d ms\n", r.ToleranceMillis))
	if r.TargetDBFS != nil {
		mode := "album average"
		if r.PerTrack {
			mode = "per track"
		}
		sb.WriteString(fmt.Sprintf("  Loudness target:    %s dBFS (%s)\n",
			formatMetric(*r.TargetDBFS, 1), mode))
	} else {
		sb.WriteString("  Loudness target:    off\n")
	}
	return sb.String()
}

func (r *Report) renderBoundaries() string {
	table := &Table{Headers: []string{"Begin", "End", "Gap"}}
	for _, b := range r.Boundaries {
		label := fmt.Sprintf("  %02d. %s", b.Track.Number, b.Track.Title)
		table.AddRow(label, []string{
			format.Duration(b.Begin, false),
			format.Duration(b.End, false),
			fmt.Sprintf("%d", b.End-b.Begin),
		}, "ms")
	}
	return table.String()
}

func (r *Report) renderTracks() string {
	table := &Table{Headers: []string{"Expected", "Actual", "Level", "Gain"}}
	for _, t := range r.Tracks {
		label := fmt.Sprintf("  %02d. %s", t.Track.Number, t.Track.Title)
		table.AddRow(label, []string{
			format.Duration(t.Track.DurationMillis, true),
			format.Duration(t.DurationMillis, true),
			formatMetricDB(t.DBFS, 2),
			formatMetricSigned(t.GainDB, 2),
		}, "dBFS")
	}
	return table.String()
}
