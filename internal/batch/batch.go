// Package batch applies bulk adjustments to collections of audio files:
// silence stripping, gain changes and loudness averaging.
package batch

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"tracksaw/internal/audio"
	"tracksaw/internal/splitter"
	"tracksaw/internal/wave"
)

// Item is one scanned audio file.
type Item struct {
	Path  string
	Audio *wave.Buffer
	Info  *audio.Info
}

// Scan loads every audio file matching one of the glob patterns.
// Files with identical content are loaded once; the first matching
// path wins. Results are ordered by path for stable output.
func Scan(patterns []string) ([]Item, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("batch: bad pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	seen := make(map[string]bool)
	var items []Item
	for _, path := range paths {
		sum, err := fileHash(path)
		if err != nil {
			return nil, err
		}
		if seen[sum] {
			continue
		}
		seen[sum] = true

		buf, info, err := audio.Load(path)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Path: path, Audio: buf, Info: info})
	}
	return items, nil
}

// fileHash returns the SHA-1 digest of a file, used to drop duplicate
// content matched by overlapping patterns.
func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("batch: hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Strip trims leading and trailing silence from every item.
func Strip(items []Item, thresholdDBFS float64, stepMillis int64) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		trimmed, _, _ := splitter.Trim(item.Audio, thresholdDBFS, stepMillis)
		out[i] = Item{Path: item.Path, Audio: trimmed, Info: item.Info}
	}
	return out
}

// Gain changes every item's loudness by db decibels.
func Gain(items []Item, db float64) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = Item{Path: item.Path, Audio: item.Audio.WithGain(db), Info: item.Info}
	}
	return out
}

// Average applies one uniform gain so the items' combined loudness
// lands on target dBFS. Quiet files stay quieter than loud ones.
func Average(items []Item, targetDBFS float64) []Item {
	buffers := make([]*wave.Buffer, len(items))
	for i, item := range items {
		buffers[i] = item.Audio
	}
	combined := wave.CombinedDBFS(buffers...)

	gain := 0.0
	if !math.IsInf(combined, -1) {
		gain = targetDBFS - combined
	}

	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = Item{Path: item.Path, Audio: item.Audio.WithGain(gain), Info: item.Info}
	}
	return out
}
