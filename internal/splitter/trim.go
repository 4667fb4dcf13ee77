package splitter

import (
	"tracksaw/internal/silence"
	"tracksaw/internal/wave"
)

// Trim removes leading and trailing silence runs from a waveform and
// returns the trimmed view with both removed lengths in milliseconds.
// Trailing silence is found by reversing the view and reusing the leading
// detector. The cut uses explicit [leading, length-trailing) bounds, so a
// trailing length of zero removes nothing and the last samples survive
// intact. A fully silent view trims to empty.
func Trim(b *wave.Buffer, thresholdDBFS float64, stepMillis int64) (trimmed *wave.Buffer, leadingMillis, trailingMillis int64) {
	leadingMillis = silence.DetectLeading(b, thresholdDBFS, stepMillis)
	trailingMillis = silence.DetectLeading(b.Reverse(), thresholdDBFS, stepMillis)
	trimmed = b.Slice(leadingMillis, b.DurationMillis()-trailingMillis)
	return trimmed, leadingMillis, trailingMillis
}
