// Package audio provides WAV file I/O between disk and wave.Buffer.
package audio

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/wav"

	"tracksaw/internal/wave"
)

// Tags holds the track metadata embedded on export.
type Tags struct {
	Album  string
	Artist string
	Title  string
	Year   int
	Track  int
}

// Info describes a loaded audio file.
type Info struct {
	SampleRate     int
	Channels       int
	BitDepth       int // source bit depth before conversion to 16-bit
	DurationMillis int64
	Tags           *Tags // nil when the file carries no LIST-INFO chunk
}

// Load reads a WAV file fully into memory as a 16-bit wave.Buffer.
// Higher source bit depths are truncated to 16 bits; 8-bit audio is
// re-centered and widened.
func Load(path string) (*wave.Buffer, *Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, nil, fmt.Errorf("audio: %s is not a valid WAV file", path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("audio: decoding %s: %w", path, err)
	}
	if pcm.Format == nil || pcm.Format.NumChannels <= 0 || pcm.Format.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("audio: %s has no usable format information", path)
	}

	samples, err := toInt16(pcm.Data, pcm.SourceBitDepth)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: %s: %w", path, err)
	}

	buf, err := wave.New(samples, pcm.Format.SampleRate, pcm.Format.NumChannels)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: %s: %w", path, err)
	}

	// The PCM pass consumed the stream; rewind and scan again for the
	// LIST-INFO chunk with a fresh decoder.
	var tags *Tags
	if _, err := f.Seek(0, io.SeekStart); err == nil {
		meta := wav.NewDecoder(f)
		meta.ReadMetadata()
		tags = tagsFromMetadata(meta.Metadata)
	}

	info := &Info{
		SampleRate:     pcm.Format.SampleRate,
		Channels:       pcm.Format.NumChannels,
		BitDepth:       pcm.SourceBitDepth,
		DurationMillis: buf.DurationMillis(),
		Tags:           tags,
	}

	return buf, info, nil
}

// toInt16 converts decoded PCM integers to 16-bit samples.
func toInt16(data []int, sourceBitDepth int) ([]int16, error) {
	out := make([]int16, len(data))
	switch sourceBitDepth {
	case 16:
		for i, v := range data {
			out[i] = int16(v)
		}
	case 24:
		for i, v := range data {
			out[i] = int16(v >> 8)
		}
	case 32:
		for i, v := range data {
			out[i] = int16(v >> 16)
		}
	case 8:
		// 8-bit WAV is unsigned.
		for i, v := range data {
			out[i] = int16((v - 128) << 8)
		}
	default:
		return nil, fmt.Errorf("unsupported bit depth %d", sourceBitDepth)
	}
	return out, nil
}

// tagsFromMetadata maps a WAV LIST-INFO chunk to Tags.
func tagsFromMetadata(m *wav.Metadata) *Tags {
	if m == nil {
		return nil
	}
	tags := &Tags{
		Album:  m.Product,
		Artist: m.Artist,
		Title:  m.Title,
	}
	if m.CreationDate != "" {
		// CreationDate may be a bare year or a fuller date; keep the year.
		if y, err := strconv.Atoi(strings.SplitN(m.CreationDate, "-", 2)[0]); err == nil {
			tags.Year = y
		}
	}
	if m.TrackNbr != "" {
		if n, err := strconv.Atoi(m.TrackNbr); err == nil {
			tags.Track = n
		}
	}
	return tags
}
