package splitter

import (
	"testing"

	"tracksaw/internal/silence"
	"tracksaw/internal/tracklist"
	"tracksaw/internal/wave"
)

const testRate = 1000 // 1 frame per ms

// loudBuffer returns a constant-amplitude mono buffer of the given length.
func loudBuffer(t *testing.T, durMillis int64) *wave.Buffer {
	t.Helper()
	samples := make([]int16, durMillis)
	for i := range samples {
		samples[i] = 10000
	}
	b, err := wave.New(samples, testRate, 1)
	if err != nil {
		t.Fatalf("wave.New: %v", err)
	}
	return b
}

// recordReporter captures events for assertions.
type recordReporter struct {
	NopReporter
	boundaries [][2]int64
	skipped    [][2]int64
	unmatched  []tracklist.Track
}

func (r *recordReporter) BoundaryFound(_ tracklist.Track, begin, end int64) {
	r.boundaries = append(r.boundaries, [2]int64{begin, end})
}

func (r *recordReporter) SilenceSkipped(begin, end int64) {
	r.skipped = append(r.skipped, [2]int64{begin, end})
}

func (r *recordReporter) TracksUnmatched(tracks []tracklist.Track) {
	r.unmatched = tracks
}

func testMatchConfig(tolerance int64) MatchConfig {
	return MatchConfig{
		ToleranceMillis:   tolerance,
		TrimThresholdDBFS: silence.DefaultThresholdDBFS,
		SeekStepMillis:    silence.DefaultSeekStepMillis,
	}
}

func TestMatchPicksFirstQualifyingInterval(t *testing.T) {
	album := loudBuffer(t, 121000)
	tracks := []tracklist.Track{{Title: "Only", Number: 1, DurationMillis: 60000}}
	intervals := []silence.Interval{
		{Start: 59000, End: 60500},
		{Start: 120000, End: 120100},
	}

	rep := &recordReporter{}
	cfg := testMatchConfig(0)
	cfg.Reporter = rep

	segments := Match(album, intervals, tracks, cfg)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if len(rep.boundaries) != 1 || rep.boundaries[0] != [2]int64{59000, 60500} {
		t.Errorf("boundary = %v, want [[59000 60500]]", rep.boundaries)
	}
	if got := segments[0].Audio.DurationMillis(); got != 59000 {
		t.Errorf("segment duration = %d, want 59000", got)
	}
}

func TestMatchSkipsInTrackPauses(t *testing.T) {
	album := loudBuffer(t, 121000)
	tracks := []tracklist.Track{{Title: "Long", Number: 1, DurationMillis: 115000}}
	intervals := []silence.Interval{
		{Start: 30000, End: 30200}, // mid-track breath
		{Start: 70000, End: 70300}, // another pause
		{Start: 118000, End: 119000},
	}

	rep := &recordReporter{}
	cfg := testMatchConfig(0)
	cfg.Reporter = rep

	segments := Match(album, intervals, tracks, cfg)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if len(rep.skipped) != 2 {
		t.Errorf("skipped %d intervals, want 2: %v", len(rep.skipped), rep.skipped)
	}
	if rep.boundaries[0] != [2]int64{118000, 119000} {
		t.Errorf("boundary = %v, want [118000 119000]", rep.boundaries[0])
	}
}

func TestMatchOffsetAdvances(t *testing.T) {
	// Two 60s tracks: the second track's expected duration is measured
	// from the end of the first boundary silence, not from zero.
	album := loudBuffer(t, 122000)
	tracks := []tracklist.Track{
		{Title: "A", Number: 1, DurationMillis: 60000},
		{Title: "B", Number: 2, DurationMillis: 60000},
	}
	intervals := []silence.Interval{
		{Start: 60000, End: 61000},
	}

	rep := &recordReporter{}
	cfg := testMatchConfig(500)
	cfg.Reporter = rep

	segments := Match(album, intervals, tracks, cfg)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	// Second boundary is the synthetic terminal: 122000-61000 = 61000 ms
	// relative, accepted against 60000-500.
	if rep.boundaries[1] != [2]int64{122000, 122000} {
		t.Errorf("second boundary = %v, want [122000 122000]", rep.boundaries[1])
	}
}

func TestMatchNeverRewinds(t *testing.T) {
	album := loudBuffer(t, 200000)
	tracks := []tracklist.Track{
		{Title: "A", Number: 1, DurationMillis: 50000},
		{Title: "B", Number: 2, DurationMillis: 50000},
		{Title: "C", Number: 3, DurationMillis: 50000},
	}
	intervals := []silence.Interval{
		{Start: 20000, End: 20200},
		{Start: 50000, End: 50500},
		{Start: 80000, End: 80200},
		{Start: 100500, End: 101000},
		{Start: 151000, End: 151400},
	}

	rep := &recordReporter{}
	cfg := testMatchConfig(0)
	cfg.Reporter = rep
	Match(album, intervals, tracks, cfg)

	// Every inspected interval (skipped or matched) must start at or after
	// the previous one: a strictly forward cursor.
	var inspected [][2]int64
	inspected = append(inspected, rep.skipped...)
	inspected = append(inspected, rep.boundaries...)
	seen := make(map[[2]int64]bool)
	for _, iv := range inspected {
		if seen[iv] {
			t.Errorf("interval %v inspected twice; cursor rewound", iv)
		}
		seen[iv] = true
	}
	for i := 1; i < len(rep.boundaries); i++ {
		if rep.boundaries[i][0] < rep.boundaries[i-1][1] {
			t.Errorf("boundaries out of order: %v", rep.boundaries)
		}
	}
}

func TestMatchMonotonicInTolerance(t *testing.T) {
	album := loudBuffer(t, 100000)
	tracks := []tracklist.Track{
		{Title: "A", Number: 1, DurationMillis: 40000},
		{Title: "B", Number: 2, DurationMillis: 70000},
	}
	intervals := []silence.Interval{
		{Start: 38000, End: 38500},
		{Start: 95000, End: 95200},
	}

	prev := -1
	for _, tolerance := range []int64{0, 500, 2000, 5000, 20000, 100000} {
		segments := Match(album, intervals, tracks, testMatchConfig(tolerance))
		if prev >= 0 && len(segments) < prev {
			t.Errorf("tolerance %d produced %d segments, fewer than %d at a tighter tolerance",
				tolerance, len(segments), prev)
		}
		prev = len(segments)
	}
}

func TestMatchZeroDurationTrackCutsAtNextSilence(t *testing.T) {
	album := loudBuffer(t, 50000)
	tracks := []tracklist.Track{
		{Title: "Bogus", Number: 1, DurationMillis: 0},
		{Title: "Rest", Number: 2, DurationMillis: 40000},
	}
	intervals := []silence.Interval{{Start: 10000, End: 10200}}

	rep := &recordReporter{}
	cfg := testMatchConfig(0)
	cfg.Reporter = rep

	segments := Match(album, intervals, tracks, cfg)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	// expected - tolerance is 0, so the very first interval qualifies.
	if rep.boundaries[0] != [2]int64{10000, 10200} {
		t.Errorf("first boundary = %v, want [10000 10200]", rep.boundaries[0])
	}
}

func TestMatchExhaustedIntervalsReportsUnmatched(t *testing.T) {
	album := loudBuffer(t, 30000)
	tracks := []tracklist.Track{
		{Title: "A", Number: 1, DurationMillis: 25000},
		{Title: "B", Number: 2, DurationMillis: 25000},
		{Title: "C", Number: 3, DurationMillis: 25000},
	}

	rep := &recordReporter{}
	cfg := testMatchConfig(5000)
	cfg.Reporter = rep

	// Only the synthetic terminal interval exists: track A consumes it,
	// B and C run out.
	segments := Match(album, nil, tracks, cfg)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if len(rep.unmatched) != 2 {
		t.Fatalf("unmatched = %v, want B and C", rep.unmatched)
	}
	if rep.unmatched[0].Title != "B" || rep.unmatched[1].Title != "C" {
		t.Errorf("unmatched = %v, want B and C", rep.unmatched)
	}
}

func TestMatchReportOffset(t *testing.T) {
	album := loudBuffer(t, 70000)
	tracks := []tracklist.Track{{Title: "A", Number: 1, DurationMillis: 60000}}
	intervals := []silence.Interval{{Start: 60000, End: 60500}}

	rep := &recordReporter{}
	cfg := testMatchConfig(500)
	cfg.Reporter = rep
	cfg.ReportOffsetMillis = 1500 // album lead-in stripped before matching

	Match(album, intervals, tracks, cfg)
	if rep.boundaries[0] != [2]int64{61500, 62000} {
		t.Errorf("boundary = %v, want lead-in offset applied [61500 62000]", rep.boundaries[0])
	}
}
