package wave

import (
	"math"
	"testing"
)

// tone generates a constant-amplitude buffer of the given duration.
func tone(t *testing.T, amplitude int16, durMillis int64, sampleRate, channels int) *Buffer {
	t.Helper()
	frames := int(durMillis * int64(sampleRate) / 1000)
	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = amplitude
	}
	b, err := New(samples, sampleRate, channels)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		samples    []int16
		sampleRate int
		channels   int
		wantErr    bool
	}{
		{"valid mono", []int16{0, 1, 2}, 44100, 1, false},
		{"valid stereo", []int16{0, 1, 2, 3}, 44100, 2, false},
		{"zero sample rate", []int16{0}, 0, 1, true},
		{"zero channels", []int16{0}, 44100, 0, true},
		{"odd samples for stereo", []int16{0, 1, 2}, 44100, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.samples, tt.sampleRate, tt.channels)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDurationMillis(t *testing.T) {
	b := tone(t, 1000, 2500, 8000, 1)
	if got := b.DurationMillis(); got != 2500 {
		t.Errorf("DurationMillis() = %d, want 2500", got)
	}
}

func TestSliceIndependence(t *testing.T) {
	b := tone(t, 1000, 1000, 1000, 1) // 1 sample per ms
	s := b.Slice(100, 200)

	if got := s.DurationMillis(); got != 100 {
		t.Errorf("slice duration = %d ms, want 100", got)
	}

	// Mutating the slice's backing array must not affect the source.
	s.Samples()[0] = 0
	if b.Samples()[100] != 1000 {
		t.Error("slicing aliased the source buffer")
	}
}

func TestSliceClamping(t *testing.T) {
	b := tone(t, 1000, 1000, 1000, 1)

	tests := []struct {
		name       string
		start, end int64
		wantMillis int64
	}{
		{"negative start", -50, 100, 100},
		{"end past length", 900, 5000, 100},
		{"inverted range", 500, 100, 0},
		{"empty range", 300, 300, 0},
		{"full range", 0, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Slice(tt.start, tt.end).DurationMillis(); got != tt.wantMillis {
				t.Errorf("Slice(%d, %d) duration = %d, want %d", tt.start, tt.end, got, tt.wantMillis)
			}
		})
	}
}

func TestReversePreservesFrames(t *testing.T) {
	samples := []int16{1, 2, 3, 4, 5, 6} // 3 stereo frames
	b, err := New(samples, 44100, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := b.Reverse()
	want := []int16{5, 6, 3, 4, 1, 2}
	for i, s := range r.Samples() {
		if s != want[i] {
			t.Fatalf("Reverse() samples = %v, want %v", r.Samples(), want)
		}
	}

	// Double reversal restores the original order.
	rr := r.Reverse()
	for i, s := range rr.Samples() {
		if s != samples[i] {
			t.Fatalf("double Reverse() = %v, want %v", rr.Samples(), samples)
		}
	}
}

func TestDBFS(t *testing.T) {
	t.Run("silence is -Inf", func(t *testing.T) {
		b := tone(t, 0, 100, 44100, 1)
		if got := b.DBFS(); !math.IsInf(got, -1) {
			t.Errorf("DBFS() of silence = %f, want -Inf", got)
		}
	})

	t.Run("full scale is ~0", func(t *testing.T) {
		b := tone(t, math.MaxInt16, 100, 44100, 1)
		if got := b.DBFS(); math.Abs(got) > 0.01 {
			t.Errorf("DBFS() of full-scale = %f, want ~0", got)
		}
	})

	t.Run("half scale is ~-6", func(t *testing.T) {
		b := tone(t, 16384, 100, 44100, 1)
		if got := b.DBFS(); math.Abs(got-(-6.02)) > 0.05 {
			t.Errorf("DBFS() of half-scale = %f, want ~-6.02", got)
		}
	})
}

func TestWithGain(t *testing.T) {
	t.Run("zero gain is identity", func(t *testing.T) {
		b := tone(t, 1234, 100, 44100, 1)
		g := b.WithGain(0)
		for i, s := range g.Samples() {
			if s != b.Samples()[i] {
				t.Fatal("WithGain(0) altered samples")
			}
		}
	})

	t.Run("+6dB roughly doubles amplitude", func(t *testing.T) {
		b := tone(t, 1000, 100, 44100, 1)
		g := b.WithGain(6.02)
		got := g.Samples()[0]
		if got < 1990 || got > 2010 {
			t.Errorf("WithGain(6.02) sample = %d, want ~2000", got)
		}
	})

	t.Run("clamps at full scale", func(t *testing.T) {
		b := tone(t, 30000, 100, 44100, 1)
		g := b.WithGain(20)
		if got := g.Samples()[0]; got != math.MaxInt16 {
			t.Errorf("WithGain(20) sample = %d, want clamp at %d", got, math.MaxInt16)
		}
	})
}

func TestCombinedDBFS(t *testing.T) {
	t.Run("equal lengths match simple mean", func(t *testing.T) {
		a := tone(t, 8000, 500, 8000, 1)
		b := tone(t, 8000, 500, 8000, 1)
		combined := CombinedDBFS(a, b)
		if math.Abs(combined-a.DBFS()) > 0.001 {
			t.Errorf("CombinedDBFS of identical buffers = %f, want %f", combined, a.DBFS())
		}
	})

	t.Run("unequal lengths use energy sum not dBFS mean", func(t *testing.T) {
		loudLong := tone(t, 16000, 2000, 8000, 1)
		quietShort := tone(t, 1000, 100, 8000, 1)

		combined := CombinedDBFS(loudLong, quietShort)
		mean := (loudLong.DBFS() + quietShort.DBFS()) / 2

		// The long loud buffer dominates the energy sum, so the combined
		// measurement must sit far above the naive per-buffer mean.
		if combined <= mean+3 {
			t.Errorf("CombinedDBFS = %f, dBFS mean = %f; expected concatenation semantics", combined, mean)
		}
	})

	t.Run("all silent is -Inf", func(t *testing.T) {
		a := tone(t, 0, 100, 8000, 1)
		if got := CombinedDBFS(a, a); !math.IsInf(got, -1) {
			t.Errorf("CombinedDBFS of silence = %f, want -Inf", got)
		}
	})
}
