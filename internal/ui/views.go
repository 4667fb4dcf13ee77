package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tracksaw/internal/format"
)

// renderSplitView renders the main split-in-progress view
func renderSplitView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderTrackQueue(m))
	b.WriteString("\n")

	b.WriteString(renderFooter(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#005F87")).
		Render("Tracksaw 🪚 - Album Recording Splitter")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Splitting %s into %d track(s)", filepath.Base(m.InputPath), len(m.Tracks)))

	return title + "\n" + subtitle
}

// renderTrackQueue renders the list of tracks with their status
func renderTrackQueue(m Model) string {
	var b strings.Builder

	for _, tp := range m.Tracks {
		b.WriteString(renderTrackEntry(tp))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTrackEntry renders a single track entry in the queue
func renderTrackEntry(tp TrackProgress) string {
	label := fmt.Sprintf("%02d. %s", tp.Track.Number, tp.Track.Title)

	switch tp.Status {
	case StatusExported:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		summary := fmt.Sprintf("%s | %.1f dBFS → %s",
			format.Duration(tp.DurationMillis, true), tp.DBFS, filepath.Base(tp.OutputPath))
		return fmt.Sprintf(" %s %s\n   %s", icon, label, summary)

	case StatusMatched:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n   Cut at %s - %s", icon, label,
			format.Duration(tp.Begin, false), format.Duration(tp.End, false))

	case StatusUnmatched:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   No matching silence found", icon, label)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued (%s expected)", icon, label,
			format.Duration(tp.Track.DurationMillis, true))
	}
}

// renderFooter renders the overall progress footer
func renderFooter(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	content := fmt.Sprintf("Exported %d of %d track(s)", m.Exported, len(m.Tracks))
	if len(m.Skipped) > 0 {
		content += fmt.Sprintf(" | %d silence(s) skipped", len(m.Skipped))
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final summary after the split
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	if m.Err != nil {
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			Render("✗ Split failed")
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("   %v\n", m.Err))
		return b.String()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Split Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, tp := range m.Tracks {
		if tp.Status == StatusExported {
			b.WriteString(renderExportedTrack(tp))
			b.WriteString("\n")
		}
	}

	unmatched := 0
	for _, tp := range m.Tracks {
		if tp.Status == StatusUnmatched {
			unmatched++
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d track(s) exported, %d silence(s) skipped",
		m.Exported, len(m.Skipped)))
	if unmatched > 0 {
		b.WriteString(fmt.Sprintf(", %d track(s) unmatched", unmatched))
	}
	b.WriteString("\n")

	return b.String()
}

// renderExportedTrack renders a summary line for an exported track
func renderExportedTrack(tp TrackProgress) string {
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")

	return fmt.Sprintf(" %s %02d. %s → %s\n   Duration: %s | Level: %.1f dBFS",
		icon, tp.Track.Number, tp.Track.Title, filepath.Base(tp.OutputPath),
		format.Duration(tp.DurationMillis, true), tp.DBFS)
}
