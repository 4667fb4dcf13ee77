package cli

import (
	"fmt"
	"strings"

	"tracksaw/internal/format"
	"tracksaw/internal/tracklist"
)

// maxTitleLength bounds track titles in console output.
const maxTitleLength = 20

// ConsoleReporter prints split progress to stdout using the shared
// styles. It implements splitter.Reporter.
type ConsoleReporter struct{}

// TrackParsing announces a track read from the tracklist.
func (ConsoleReporter) TrackParsing(t tracklist.Track) {
	PrintInfo("Parsing track", fmt.Sprintf("%s (%s)",
		ellipsis(t.Title), format.Duration(t.DurationMillis, true)))
}

// BoundaryFound announces the silence interval a cut was made at.
func (ConsoleReporter) BoundaryFound(t tracklist.Track, begin, end int64) {
	PrintInfo("Info", fmt.Sprintf("splicing audio at %s - %s",
		format.Duration(begin, false), format.Duration(end, false)))
}

// SilenceSkipped announces a silence interval too early to qualify as
// a track boundary.
func (ConsoleReporter) SilenceSkipped(begin, end int64) {
	PrintWarn("Warn", fmt.Sprintf("silence at %s skipped (%d ms)",
		format.Duration(begin, false), end-begin))
}

// TracksUnmatched warns about tracks left over after the audio ran out.
func (ConsoleReporter) TracksUnmatched(tracks []tracklist.Track) {
	titles := make([]string, len(tracks))
	for i, t := range tracks {
		titles[i] = ellipsis(t.Title)
	}
	PrintWarn("Warn", fmt.Sprintf("no audio left for %d track(s): %s",
		len(tracks), strings.Join(titles, ", ")))
}

// SegmentExported announces a written track file.
func (ConsoleReporter) SegmentExported(t tracklist.Track, path string, dbfs float64, durMillis int64) {
	PrintInfo("Exporting track", fmt.Sprintf("%-25s(%-6.2f dBFS, %s)",
		ellipsis(t.Title), dbfs, format.Duration(durMillis, true)))
}

// ellipsis shortens and quotes a title for display.
func ellipsis(title string) string {
	title = strings.TrimSpace(title)
	if len(title) > maxTitleLength {
		title = strings.TrimSpace(title[:maxTitleLength-1]) + "..."
	}
	return `"` + title + `"`
}
