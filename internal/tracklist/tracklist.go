// Package tracklist parses the human-authored album tracklist format:
//
//	Album: The Album Title
//	Artist: The Artist
//	Year: 1974
//	1. "First Song"  3:45
//	2. "Second Song"  4:10
//
// Header lines may appear in any order relative to track lines; blank and
// unrecognized lines are ignored.
package tracklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"

	"tracksaw/internal/format"
)

// Track holds the metadata for a single expected track. Created once during
// parsing and read-only afterwards.
type Track struct {
	Artist         string
	Album          string
	Title          string
	Year           int
	Number         int   // 1-based track number, the processing order key
	DurationMillis int64 // expected duration; 0 when the tracklist gave none
}

var (
	albumRe  = regexp.MustCompile(`^\s*Album:\s*(\S.*\S|\S)\s*$`)
	artistRe = regexp.MustCompile(`^\s*Artist:\s*(\S.*\S|\S)\s*$`)
	yearRe   = regexp.MustCompile(`^\s*Year:\s*(\d+)\s*$`)
	trackRe  = regexp.MustCompile(`^\s*(\d+)\.\s*"(.*)".*\b(\d+:\d+)\s*$`)
)

// Parse reads a tracklist from r. Header lines may appear anywhere; their
// values apply to every track. A track line with an unparseable duration
// gets a duration of 0 rather than an error. The returned tracks are
// sorted by track number regardless of their order in the input.
func Parse(r io.Reader) ([]Track, error) {
	var (
		tracks []Track
		album  string
		artist string
		year   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case albumRe.MatchString(line):
			album = albumRe.FindStringSubmatch(line)[1]
		case artistRe.MatchString(line):
			artist = artistRe.FindStringSubmatch(line)[1]
		case yearRe.MatchString(line):
			year, _ = strconv.Atoi(yearRe.FindStringSubmatch(line)[1])
		case trackRe.MatchString(line):
			m := trackRe.FindStringSubmatch(line)
			number, _ := strconv.Atoi(m[1])
			duration, err := format.ParseClock(m[3])
			if err != nil {
				duration = 0
			}
			tracks = append(tracks, Track{
				Title:          m[2],
				Number:         number,
				DurationMillis: duration,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tracklist: read failed: %w", err)
	}

	for i := range tracks {
		tracks[i].Artist = artist
		tracks[i].Album = album
		tracks[i].Year = year
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Number < tracks[j].Number
	})

	return tracks, nil
}

// ParseFile parses the tracklist at the given path.
func ParseFile(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tracklist: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
