package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// progressLog appends one CSV row per evaluation and tracks the best one.
type progressLog struct {
	file   *os.File
	w      *csv.Writer
	total  int
	start  time.Time
	count  int
	best   []float64
	bestFx float64
}

func newProgressLog(path string, params *ParamVector, total int) (*progressLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}

	header := []string{"eval", "fitness", "quality"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing log header: %w", err)
	}

	return &progressLog{file: f, w: w, total: total, start: time.Now(), bestFx: 1e9}, nil
}

// Record logs one evaluation of raw parameter values.
func (p *progressLog) Record(raw []float64, fitness, quality float64) {
	p.count++
	if fitness < p.bestFx {
		p.bestFx = fitness
		p.best = append(p.best[:0], raw...)
	}

	row := []string{strconv.Itoa(p.count), formatFloat(fitness), formatFloat(quality)}
	for _, v := range raw {
		row = append(row, formatFloat(v))
	}
	if err := p.w.Write(row); err != nil {
		slog.Error("failed to write log row", "error", err)
	}
	p.w.Flush()

	elapsed := p.Elapsed()
	eta := time.Duration(p.total-p.count) * (elapsed / time.Duration(p.count))
	fmt.Printf("Eval %d/%d: quality=%.3f (best=%.3f) | elapsed: %s, ETA: %s\n",
		p.count, p.total, quality, -p.bestFx, formatDuration(elapsed), formatDuration(eta))
}

// Best returns the lowest-fitness values seen, or nil before any evaluation.
func (p *progressLog) Best() []float64 { return p.best }

func (p *progressLog) BestFitness() float64 { return p.bestFx }

func (p *progressLog) Count() int { return p.count }

func (p *progressLog) Elapsed() time.Duration { return time.Since(p.start) }

// Close flushes and closes the log file.
func (p *progressLog) Close() error {
	p.w.Flush()
	if err := p.w.Error(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
