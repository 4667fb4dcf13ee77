package splitter

import (
	"math"

	"tracksaw/internal/wave"
)

// NormalizePerTrack shifts each segment independently so its average
// loudness hits targetDBFS. Segments are replaced, not mutated; a gain of
// 0 still produces a fresh copy. Silent segments are left at their copy --
// there is no finite gain that reaches the target from -Inf.
func NormalizePerTrack(segments []Segment, targetDBFS float64) []Segment {
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		gain := 0.0
		if dbfs := seg.Audio.DBFS(); !math.IsInf(dbfs, -1) {
			gain = targetDBFS - dbfs
		}
		out[i] = Segment{Audio: seg.Audio.WithGain(gain), Track: seg.Track}
	}
	return out
}

// NormalizeAlbumAverage applies one uniform gain to every segment so the
// concatenation of all segments averages targetDBFS. The current loudness
// is measured with concatenation (energy-sum) semantics, not as a mean of
// per-segment dBFS values, which would be wrong for unequal lengths.
func NormalizeAlbumAverage(segments []Segment, targetDBFS float64) []Segment {
	buffers := make([]*wave.Buffer, len(segments))
	for i, seg := range segments {
		buffers[i] = seg.Audio
	}

	gain := 0.0
	if current := wave.CombinedDBFS(buffers...); !math.IsInf(current, -1) {
		gain = targetDBFS - current
	}

	out := make([]Segment, len(segments))
	for i, seg := range segments {
		out[i] = Segment{Audio: seg.Audio.WithGain(gain), Track: seg.Track}
	}
	return out
}
