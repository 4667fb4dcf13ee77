// Package wave provides an in-memory PCM waveform with millisecond slicing
// and loudness measurement.
package wave

import (
	"fmt"
	"math"
)

// maxAmplitude is the largest representable magnitude for 16-bit PCM.
// dBFS measurements are relative to this value.
const maxAmplitude = 32768.0

// Buffer is an immutable, sliceable view of interleaved 16-bit PCM audio.
// Slicing produces a new independent Buffer; no operation mutates an
// existing one.
type Buffer struct {
	samples    []int16 // interleaved frames
	sampleRate int
	channels   int
}

// New creates a Buffer over the given interleaved samples.
func New(samples []int16, sampleRate, channels int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wave: sample rate must be positive, got %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("wave: channel count must be positive, got %d", channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("wave: %d samples do not divide into %d channels", len(samples), channels)
	}
	return &Buffer{samples: samples, sampleRate: sampleRate, channels: channels}, nil
}

// Empty returns a zero-length Buffer with the given format.
func Empty(sampleRate, channels int) *Buffer {
	return &Buffer{samples: nil, sampleRate: sampleRate, channels: channels}
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int { return b.channels }

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int { return len(b.samples) / b.channels }

// Samples returns the underlying interleaved sample data. Callers must
// treat the returned slice as read-only.
func (b *Buffer) Samples() []int16 { return b.samples }

// DurationMillis returns the buffer length in milliseconds, truncated.
func (b *Buffer) DurationMillis() int64 {
	return int64(b.Frames()) * 1000 / int64(b.sampleRate)
}

// frameAt converts a millisecond offset to a frame index, clamped to the
// buffer bounds.
func (b *Buffer) frameAt(ms int64) int {
	if ms < 0 {
		return 0
	}
	frame := int(ms * int64(b.sampleRate) / 1000)
	if frames := b.Frames(); frame > frames {
		return frames
	}
	return frame
}

// Slice returns a new independent Buffer covering [startMillis, endMillis).
// Bounds are clamped to the buffer; an inverted range yields an empty Buffer.
func (b *Buffer) Slice(startMillis, endMillis int64) *Buffer {
	start := b.frameAt(startMillis)
	end := b.frameAt(endMillis)
	if end <= start {
		return Empty(b.sampleRate, b.channels)
	}
	out := make([]int16, (end-start)*b.channels)
	copy(out, b.samples[start*b.channels:end*b.channels])
	return &Buffer{samples: out, sampleRate: b.sampleRate, channels: b.channels}
}

// Reverse returns a new Buffer with the frame order reversed. Channel
// interleaving within each frame is preserved.
func (b *Buffer) Reverse() *Buffer {
	frames := b.Frames()
	out := make([]int16, len(b.samples))
	for f := 0; f < frames; f++ {
		src := (frames - 1 - f) * b.channels
		dst := f * b.channels
		copy(out[dst:dst+b.channels], b.samples[src:src+b.channels])
	}
	return &Buffer{samples: out, sampleRate: b.sampleRate, channels: b.channels}
}

// RMS returns the root-mean-square amplitude of the buffer in linear
// sample units. An empty buffer has an RMS of 0.
func (b *Buffer) RMS() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	sum, n := b.power()
	return math.Sqrt(sum / float64(n))
}

// power returns the sum of squared samples and the sample count.
func (b *Buffer) power() (sumSquares float64, count int64) {
	for _, s := range b.samples {
		v := float64(s)
		sumSquares += v * v
	}
	return sumSquares, int64(len(b.samples))
}

// DBFS returns the average loudness of the buffer in decibels relative to
// full scale. Digital silence (and an empty buffer) measures -Inf.
func (b *Buffer) DBFS() float64 {
	rms := b.RMS()
	if rms == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(rms/maxAmplitude)
}

// WithGain returns a new Buffer with a uniform gain shift applied, in dB.
// Samples are clamped to the 16-bit range. A gain of 0 returns an
// identical copy.
func (b *Buffer) WithGain(db float64) *Buffer {
	factor := math.Pow(10, db/20)
	out := make([]int16, len(b.samples))
	for i, s := range b.samples {
		v := math.Round(float64(s) * factor)
		switch {
		case v > math.MaxInt16:
			out[i] = math.MaxInt16
		case v < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}
	return &Buffer{samples: out, sampleRate: b.sampleRate, channels: b.channels}
}

// CombinedDBFS measures the loudness of the concatenation of all given
// buffers. This is the energy sum over the total sample count, which is not
// the same as averaging per-buffer dBFS values when lengths differ.
func CombinedDBFS(buffers ...*Buffer) float64 {
	var sum float64
	var count int64
	for _, b := range buffers {
		s, n := b.power()
		sum += s
		count += n
	}
	if count == 0 || sum == 0 {
		return math.Inf(-1)
	}
	rms := math.Sqrt(sum / float64(count))
	return 20 * math.Log10(rms/maxAmplitude)
}
