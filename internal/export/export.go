// Package export writes matched segments out as tagged WAV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tracksaw/internal/audio"
	"tracksaw/internal/splitter"
)

// invalidChars are characters that are unsafe in filenames on at least
// one supported platform.
const invalidChars = `<>:"|?*`

// SanitizeTitle turns a track title into a safe filename component.
// Path separators become spaces so a title like "AC/DC" does not create
// a subdirectory.
func SanitizeTitle(title string) string {
	title = strings.ReplaceAll(title, "/", " ")
	title = strings.ReplaceAll(title, "\\", " ")
	var b strings.Builder
	for _, r := range title {
		if strings.ContainsRune(invalidChars, r) || r < 0x20 {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Filename returns the output filename for a segment's track.
func Filename(title string) string {
	name := SanitizeTitle(title)
	if name == "" {
		name = "untitled"
	}
	return name + ".wav"
}

// WriteSegments exports segments one by one into dir, creating it if
// needed. Each file carries the track's metadata as a LIST-INFO chunk.
// The reporter is notified after each successful export.
func WriteSegments(segments []splitter.Segment, dir string, reporter splitter.Reporter) error {
	if reporter == nil {
		reporter = splitter.NopReporter{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: creating %s: %w", dir, err)
	}

	for _, seg := range segments {
		path := filepath.Join(dir, Filename(seg.Track.Title))
		tags := &audio.Tags{
			Album:  seg.Track.Album,
			Artist: seg.Track.Artist,
			Title:  seg.Track.Title,
			Year:   seg.Track.Year,
			Track:  seg.Track.Number,
		}
		if err := audio.Write(path, seg.Audio, tags); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		reporter.SegmentExported(seg.Track, path, seg.Audio.DBFS(), seg.Audio.DurationMillis())
	}
	return nil
}
