package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"tracksaw/internal/audio"
	"tracksaw/internal/format"
)

// Info prints a summary line per scanned file.
func Info(w io.Writer, items []Item) {
	for _, item := range items {
		fmt.Fprintf(w, "Audio file: %s\n", item.Path)
		fmt.Fprintf(w, "Duration: %-10s | Loudness: %3.2f dBFS\n",
			format.Duration(item.Audio.DurationMillis(), false), item.Audio.DBFS())
	}
}

// Export writes every item into dir under its original base name,
// carrying over the source file's tags. A progress bar tracks the run.
func Export(items []Item, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("batch: creating %s: %w", dir, err)
	}

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(items)),
		mpb.PrependDecorators(
			decor.Name("Exporting: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	for _, item := range items {
		var tags *audio.Tags
		if item.Info != nil {
			tags = item.Info.Tags
		}
		out := filepath.Join(dir, filepath.Base(item.Path))
		if err := audio.Write(out, item.Audio, tags); err != nil {
			bar.Abort(true)
			p.Wait()
			return err
		}
		bar.Increment()
	}

	p.Wait()
	return nil
}
