// Package scenario holds the benchmark scenarios run by fastabench.
package scenario

import (
	"fmt"
	"io"

	"fastabench/internal/benchmark"
	"fastabench/internal/sequence"
	"fastabench/internal/telemetry"
)

// GenomeParse times parsing the first RecordLimit FASTA records out of a
// gzip-compressed genome file.
type GenomeParse struct {
	Path        string
	Iterations  int
	RecordLimit int

	// Recorder is optional.
	Recorder *telemetry.Recorder

	stream  *sequence.Stream
	records []sequence.Record
}

// Name identifies the scenario in logs and metrics.
func (g *GenomeParse) Name() string {
	return "genome_parse"
}

// Records returns what the last iteration collected.
func (g *GenomeParse) Records() []sequence.Record {
	return g.records
}

func (g *GenomeParse) open() error {
	s, err := sequence.Open(g.Path)
	if err != nil {
		return err
	}
	g.stream = s
	telemetry.LogDebug("Opened genome stream", "path", g.Path)
	return nil
}

func (g *GenomeParse) close() error {
	if g.stream == nil {
		return nil
	}
	err := g.stream.Close()
	g.stream = nil
	return err
}

// parse is the timed operation.
func (g *GenomeParse) parse() error {
	if err := g.stream.Rewind(); err != nil {
		return err
	}
	records, err := sequence.Collect(g.stream, g.RecordLimit)
	if err != nil {
		return fmt.Errorf("%s: %w", g.Path, err)
	}
	g.records = records
	return nil
}

// Run times the scenario and returns one duration per iteration.
func (g *GenomeParse) Run() ([]benchmark.Duration, error) {
	opts := benchmark.Options{
		SetupAll:   g.open,
		CleanupAll: g.close,
	}
	if g.Recorder != nil {
		opts.Observer = g.Recorder.Observe
	}

	telemetry.LogInfo("Starting benchmark",
		"scenario", g.Name(),
		"path", g.Path,
		"iterations", g.Iterations,
		"record_limit", g.RecordLimit,
	)

	durations, err := benchmark.Run(g.parse, g.Iterations, opts)
	if g.Recorder != nil {
		g.Recorder.SetRecords(len(g.records))
	}
	return durations, err
}

// Report writes the statistics block followed by the record count line.
func (g *GenomeParse) Report(w io.Writer, durations []benchmark.Duration) error {
	if err := benchmark.NewPrinter(w).PrintStats(durations); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Parsed %d sequences\n", len(g.records))
	return err
}
