// Package harness compares the encoder variants: it checks every variant
// against the reference encoding on random identifiers and measures time
// and allocations per call.
package harness

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rawbytedev/guid64"
	"github.com/rawbytedev/guid64/internal/config"
)

var ErrMismatch = errors.New("variant output differs from reference")

// Mismatch records the first input a variant got wrong.
type Mismatch struct {
	Variant string
	ID      [guid64.Size]byte
	Want    string
	Got     string
}

type Report struct {
	Samples    int
	Mismatches map[string]int
	First      []Mismatch
}

// Failed reports whether any variant disagreed with the reference.
func (r Report) Failed() bool {
	for _, n := range r.Mismatches {
		if n > 0 {
			return true
		}
	}
	return false
}

// Verify encodes samples random identifiers with every variant and compares
// the results with guid64.EncodeReference.
func Verify(samples int, variants []guid64.Variant) (Report, error) {
	r := Report{Samples: samples, Mismatches: make(map[string]int, len(variants))}
	for _, v := range variants {
		r.Mismatches[v.Name] = 0
	}
	for i := 0; i < samples; i++ {
		u, err := uuid.NewRandom()
		if err != nil {
			return r, fmt.Errorf("sample %d: %w", i, err)
		}
		id := guid64.GUIDBytes(u)
		want := guid64.EncodeReference(id)
		for _, v := range variants {
			got := v.Encode(id)
			if got == want {
				continue
			}
			if r.Mismatches[v.Name] == 0 {
				r.First = append(r.First, Mismatch{Variant: v.Name, ID: id, Want: want, Got: got})
			}
			r.Mismatches[v.Name]++
		}
	}
	if r.Failed() {
		return r, ErrMismatch
	}
	return r, nil
}

type Result struct {
	Variant     string
	Iterations  int
	Elapsed     time.Duration
	NsPerOp     float64
	AllocsPerOp float64
	BytesPerOp  float64
}

var sink string

// Measure calls v.Encode iterations times on id.
func Measure(iterations int, v guid64.Variant, id [guid64.Size]byte) Result {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink = v.Encode(id)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	n := float64(iterations)
	return Result{
		Variant:     v.Name,
		Iterations:  iterations,
		Elapsed:     elapsed,
		NsPerOp:     float64(elapsed.Nanoseconds()) / n,
		AllocsPerOp: float64(after.Mallocs-before.Mallocs) / n,
		BytesPerOp:  float64(after.TotalAlloc-before.TotalAlloc) / n,
	}
}

type Runner struct {
	Logger *zap.Logger
	Config config.Config
}

// Run verifies every configured variant and then measures each one. It stops
// between variants once ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	variants, err := r.Config.ResolveVariants()
	if err != nil {
		return nil, err
	}

	report, err := Verify(r.Config.Samples, variants)
	for _, m := range report.First {
		log.Error("mismatch",
			zap.String("variant", m.Variant),
			zap.Binary("id", m.ID[:]),
			zap.String("want", m.Want),
			zap.String("got", m.Got),
			zap.Int("count", report.Mismatches[m.Variant]))
	}
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	log.Info("verified", zap.Int("samples", report.Samples), zap.Int("variants", len(variants)))

	u, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	id := guid64.GUIDBytes(u)
	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := Measure(r.Config.Iterations, v, id)
		log.Info("measured",
			zap.String("variant", res.Variant),
			zap.Int("iterations", res.Iterations),
			zap.Duration("elapsed", res.Elapsed),
			zap.Float64("ns_per_op", res.NsPerOp),
			zap.Float64("allocs_per_op", res.AllocsPerOp),
			zap.Float64("bytes_per_op", res.BytesPerOp))
		results = append(results, res)
	}
	return results, nil
}
