package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"tracksaw/internal/audio"
	"tracksaw/internal/batch"
	"tracksaw/internal/cli"
	"tracksaw/internal/config"
	"tracksaw/internal/export"
	"tracksaw/internal/logging"
	"tracksaw/internal/silence"
	"tracksaw/internal/splitter"
	"tracksaw/internal/tracklist"
	"tracksaw/internal/ui"
	"tracksaw/internal/wave"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`
	Config  string           `short:"c" type:"path" help:"Path to YAML config file (optional)"`

	Split SplitCmd `cmd:"" help:"Split an album recording into per-track files"`
	Batch BatchCmd `cmd:"" help:"Bulk-adjust audio files matching glob patterns"`
}

// SplitCmd splits one recording into tracks using a tracklist.
type SplitCmd struct {
	Input     string `short:"i" required:"" type:"existingfile" help:"Audio file to be split"`
	Tracklist string `short:"t" required:"" type:"existingfile" help:"Tracklist with titles and expected durations"`
	Output    string `short:"o" help:"Output directory"`

	Tolerance        *int64   `help:"Slack between expected track duration and silence position, in ms"`
	Loudness         *float64 `short:"l" help:"Normalize exported tracks to this average dBFS"`
	PerTrack         bool     `help:"Normalize each track individually instead of preserving album dynamics"`
	SilenceThreshold *float64 `short:"s" help:"Level below which audio counts as silent, in dBFS"`
	SilenceDuration  *int64   `short:"d" help:"Minimum silence length treated as a gap, in ms"`
	SeekStep         *int64   `help:"Silence scan window size, in ms"`

	TUI  bool `help:"Show interactive progress UI"`
	Logs bool `help:"Write a detailed split report next to the exported tracks"`
}

// BatchCmd applies bulk adjustments to files matching glob patterns.
type BatchCmd struct {
	Input  []string `short:"i" required:"" help:"Audio files to manipulate, Unix shell-style wildcards supported"`
	Output string   `short:"o" help:"Output directory"`

	List    bool     `short:"l" help:"Display info of matching audio files"`
	Strip   *float64 `short:"s" help:"Strip leading and trailing silence below the given dBFS"`
	Gain    *float64 `short:"g" help:"Change loudness by the given dB"`
	Average *float64 `short:"a" help:"Average loudness of the files to the given dBFS"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("tracksaw"),
		kong.Description("Album recording splitter"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	cfg, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := ctx.Run(cfg); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// Run executes the split command.
func (c *SplitCmd) Run(cfg *config.Config) error {
	start := time.Now()

	outDir := cfg.OutputDir
	if c.Output != "" {
		outDir = c.Output
	}
	opts := splitter.Options{
		ToleranceMillis:  cfg.ToleranceMillis,
		ThresholdDBFS:    cfg.SilenceThresholdDBFS,
		MinSilenceMillis: cfg.MinSilenceMillis,
		SeekStepMillis:   cfg.SeekStepMillis,
		TargetDBFS:       c.Loudness,
		PerTrack:         c.PerTrack,
	}
	if c.Tolerance != nil {
		opts.ToleranceMillis = *c.Tolerance
	}
	if c.SilenceThreshold != nil {
		opts.ThresholdDBFS = *c.SilenceThreshold
	}
	if c.SilenceDuration != nil {
		opts.MinSilenceMillis = *c.SilenceDuration
	}
	if c.SeekStep != nil {
		opts.SeekStepMillis = *c.SeekStep
	}

	tracks, err := tracklist.ParseFile(c.Tracklist)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("no tracks parsed from %s", c.Tracklist)
	}

	album, _, err := audio.Load(c.Input)
	if err != nil {
		return err
	}

	if c.TUI {
		return c.runTUI(album, tracks, opts, outDir)
	}
	return c.runConsole(album, tracks, opts, outDir, start)
}

// runTUI drives the split behind the Bubbletea progress UI.
func (c *SplitCmd) runTUI(album *wave.Buffer, tracks []tracklist.Track, opts splitter.Options, outDir string) error {
	model := ui.NewModel(c.Input, tracks)
	p := tea.NewProgram(model, tea.WithAltScreen())

	rep := ui.NewReporter(model.ProgressChan)
	opts.Reporter = rep

	go func() {
		segments := splitter.Split(album, tracks, opts)
		rep.Finish(export.WriteSegments(segments, outDir, rep))
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// runConsole drives the split with plain console output, collecting
// report data along the way. The pipeline is spelled out here instead
// of going through splitter.Split so the report can note the album
// trim and per-track gains.
func (c *SplitCmd) runConsole(album *wave.Buffer, tracks []tracklist.Track, opts splitter.Options, outDir string, start time.Time) error {
	report := &logging.Report{
		InputPath:       c.Input,
		TracklistPath:   c.Tracklist,
		ThresholdDBFS:   opts.ThresholdDBFS,
		MinSilenceMill:  opts.MinSilenceMillis,
		SeekStepMillis:  opts.SeekStepMillis,
		ToleranceMillis: opts.ToleranceMillis,
		TargetDBFS:      opts.TargetDBFS,
		PerTrack:        opts.PerTrack,
	}
	rec := &reportRecorder{inner: cli.ConsoleReporter{}, report: report}

	stripped, leading, trailing := splitter.Trim(album, opts.ThresholdDBFS, opts.SeekStepMillis)
	report.AlbumDurationMillis = album.DurationMillis()
	report.LeadingTrimMillis = leading
	report.TrailingTrimMillis = trailing

	intervals := silence.Detect(stripped, silence.Params{
		ThresholdDBFS:  opts.ThresholdDBFS,
		MinLenMillis:   opts.MinSilenceMillis,
		SeekStepMillis: opts.SeekStepMillis,
	})

	segments := splitter.Match(stripped, intervals, tracks, splitter.MatchConfig{
		ToleranceMillis:    opts.ToleranceMillis,
		TrimThresholdDBFS:  opts.ThresholdDBFS,
		SeekStepMillis:     opts.SeekStepMillis,
		ReportOffsetMillis: leading,
		Reporter:           rec,
	})

	if opts.TargetDBFS != nil {
		before := make([]float64, len(segments))
		for i, seg := range segments {
			before[i] = seg.Audio.DBFS()
		}
		if opts.PerTrack {
			segments = splitter.NormalizePerTrack(segments, *opts.TargetDBFS)
		} else {
			segments = splitter.NormalizeAlbumAverage(segments, *opts.TargetDBFS)
		}
		rec.gains = make(map[int]float64, len(segments))
		for i, seg := range segments {
			rec.gains[seg.Track.Number] = seg.Audio.DBFS() - before[i]
		}
	}

	if err := export.WriteSegments(segments, outDir, rec); err != nil {
		return err
	}

	if c.Logs {
		report.Elapsed = time.Since(start)
		name := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
		path := filepath.Join(outDir, name+"-split-report.txt")
		if err := os.WriteFile(path, []byte(report.String()), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		cli.PrintInfo("Info", fmt.Sprintf("split report written to %s", path))
	}
	return nil
}

// Run executes the batch command.
func (c *BatchCmd) Run(cfg *config.Config) error {
	items, err := batch.Scan(c.Input)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no audio files matched %s", strings.Join(c.Input, ", "))
	}

	if c.List {
		batch.Info(os.Stdout, items)
	}

	adjusted := false
	if c.Strip != nil {
		items = batch.Strip(items, *c.Strip, cfg.SeekStepMillis)
		adjusted = true
	}
	if c.Gain != nil {
		items = batch.Gain(items, *c.Gain)
		adjusted = true
	}
	if c.Average != nil {
		items = batch.Average(items, *c.Average)
		adjusted = true
	}

	if !adjusted {
		return nil
	}

	outDir := cfg.OutputDir
	if c.Output != "" {
		outDir = c.Output
	}
	fmt.Printf("\nExporting adjusted tracks to output directory: %s\n", outDir)
	return batch.Export(items, outDir)
}

// reportRecorder forwards pipeline events to the console reporter
// while collecting them for the split report.
type reportRecorder struct {
	inner  splitter.Reporter
	report *logging.Report
	gains  map[int]float64 // normalization gain by track number
}

func (r *reportRecorder) TrackParsing(t tracklist.Track) {
	r.inner.TrackParsing(t)
}

func (r *reportRecorder) BoundaryFound(t tracklist.Track, begin, end int64) {
	r.report.Boundaries = append(r.report.Boundaries, logging.Boundary{Track: t, Begin: begin, End: end})
	r.inner.BoundaryFound(t, begin, end)
}

func (r *reportRecorder) SilenceSkipped(begin, end int64) {
	r.report.Skipped = append(r.report.Skipped, silence.Interval{Start: begin, End: end})
	r.inner.SilenceSkipped(begin, end)
}

func (r *reportRecorder) TracksUnmatched(tracks []tracklist.Track) {
	r.report.Unmatched = tracks
	r.inner.TracksUnmatched(tracks)
}

func (r *reportRecorder) SegmentExported(t tracklist.Track, path string, dbfs float64, durMillis int64) {
	gain := math.NaN()
	if g, ok := r.gains[t.Number]; ok {
		gain = g
	}
	r.report.Tracks = append(r.report.Tracks, logging.TrackResult{
		Track:          t,
		DurationMillis: durMillis,
		DBFS:           dbfs,
		GainDB:         gain,
		Path:           path,
	})
	r.inner.SegmentExported(t, path, dbfs, durMillis)
}
