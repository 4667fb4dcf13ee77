package audio

import (
	"fmt"
	"os"
	"strconv"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"tracksaw/internal/wave"
)

// Write encodes buf as a 16-bit PCM WAV file at path. A non-nil tags
// is embedded as a LIST-INFO metadata chunk.
func Write(path string, buf *wave.Buffer, tags *Tags) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	enc := wav.NewEncoder(f, buf.SampleRate(), 16, buf.Channels(), 1)
	if tags != nil {
		enc.Metadata = metadataFromTags(tags)
	}

	samples := buf.Samples()
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	pcm := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(pcm); err != nil {
		f.Close()
		return fmt.Errorf("audio: encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("audio: finalising %s: %w", path, err)
	}
	return f.Close()
}

func metadataFromTags(tags *Tags) *wav.Metadata {
	m := &wav.Metadata{
		Artist:   tags.Artist,
		Title:    tags.Title,
		Product:  tags.Album,
		Software: "tracksaw",
	}
	if tags.Year > 0 {
		m.CreationDate = strconv.Itoa(tags.Year)
	}
	if tags.Track > 0 {
		m.TrackNbr = strconv.Itoa(tags.Track)
	}
	return m
}
