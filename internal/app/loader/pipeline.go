// Package loader builds the immutable dashboard dataset from Notion CSV
// exports. The build is a strict two-phase load: phase one parses, resolves,
// and normalizes every record of every entity type; phase two scans the
// complete collections and computes every rollup aggregate. Aggregation
// never interleaves with resolution — batch membership must be fully known
// before any batch-level sum is correct.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redacademy/academy-backend/internal/app/loader/notion"
	"github.com/redacademy/academy-backend/internal/domain"
)

// Per-entity default dates substituted for unparsable source values.
var (
	defaultBatchStart  = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	defaultBatchEnd    = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	defaultDailyDate   = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	defaultPeriodStart = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	defaultPeriodEnd   = time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
)

// PhaseResult holds the outcome of a single pipeline phase. Field-level and
// reference-level recoveries are counted here, never raised as errors.
type PhaseResult struct {
	Rows      int // raw rows seen
	Built     int // records emitted
	Dropped   int // rows with no identifying name
	Defaulted int // fields recovered with a documented default
	Fallbacks int // foreign keys resolved to the sentinel entity
	Mismatch  int // export formula values disagreeing with computed ones
	Duration  time.Duration
}

// Pipeline orchestrates the two-phase dataset build.
type Pipeline struct {
	log     *slog.Logger
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns per-phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run executes the full load and returns the finished snapshot. Structural
// I/O failures abort the whole load; no partial snapshot is ever returned.
func (p *Pipeline) Run(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// All inputs are read up front so a missing file fails the load before
	// any entity is built.
	batchRows, err := p.parseFile(p.cfg.BatchesPath)
	if err != nil {
		return nil, fmt.Errorf("batches: %w", err)
	}
	traineeRows, err := p.parseFile(p.cfg.TraineesPath)
	if err != nil {
		return nil, fmt.Errorf("trainees: %w", err)
	}
	dailyRows, err := p.parseFile(p.cfg.DailyPath)
	if err != nil {
		return nil, fmt.Errorf("daily attendance: %w", err)
	}
	tenDayRows, err := p.parseFile(p.cfg.TenDayPath)
	if err != nil {
		return nil, fmt.Errorf("10-day attendance: %w", err)
	}
	assessmentRows, err := p.parseFile(p.cfg.AssessmentsPath)
	if err != nil {
		return nil, fmt.Errorf("assessments: %w", err)
	}

	// Phase 1: parse, resolve, normalize. Build order matters — trainees
	// resolve against batches, everything else against trainees.
	start := time.Now()
	batches, declaredRosters, res := buildBatches(batchRows)
	p.finishPhase("batches", res, start)

	start = time.Now()
	trainees, res := buildTrainees(traineeRows, batches)
	p.finishPhase("trainees", res, start)

	if len(batches) == 0 || len(trainees) == 0 {
		return nil, fmt.Errorf("load %s, %s: %w",
			p.cfg.BatchesPath, p.cfg.TraineesPath, domain.ErrEmptyLoad)
	}

	start = time.Now()
	companies, res := buildCompanies(trainees)
	p.finishPhase("companies", res, start)

	start = time.Now()
	daily, res := buildDaily(dailyRows, trainees)
	p.finishPhase("daily", res, start)

	start = time.Now()
	tenDay, res := buildTenDay(tenDayRows, trainees, batches)
	p.finishPhase("tenday", res, start)

	start = time.Now()
	assessments, res := buildAssessments(assessmentRows, trainees, batches)
	p.finishPhase("assessments", res, start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 2: rollup aggregation over the complete immutable collections.
	start = time.Now()
	snap := Aggregate(batches, trainees, companies, daily, tenDay, assessments)
	p.finishPhase("rollup", PhaseResult{
		Rows:  len(daily) + len(tenDay) + len(assessments),
		Built: len(snap.Batches) + len(snap.Trainees) + len(snap.Companies),
	}, start)

	// The batches export declares its own rosters; disagreement with the
	// resolved membership is counted like any other export drift.
	if n := rosterMismatches(p.log, declaredRosters, snap.Batches); n > 0 {
		bres := p.results["batches"]
		bres.Mismatch += n
		p.results["batches"] = bres
	}

	p.log.Info("load completed",
		slog.Int("batches", len(snap.Batches)),
		slog.Int("trainees", len(snap.Trainees)),
		slog.Int("companies", len(snap.Companies)),
		slog.Int("daily_records", len(snap.DailyAttendance)),
		slog.Int("ten_day_records", len(snap.Attendance10Day)),
		slog.Int("assessments", len(snap.Assessments)),
	)

	return snap, nil
}

// parseFile reads one export file into raw rows.
func (p *Pipeline) parseFile(path string) ([]notion.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	rows, err := notion.ParseRows(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

func (p *Pipeline) finishPhase(name string, res PhaseResult, start time.Time) {
	res.Duration = time.Since(start)
	p.results[name] = res

	p.log.Info("phase completed",
		slog.String("phase", name),
		slog.Int("rows", res.Rows),
		slog.Int("built", res.Built),
		slog.Int("dropped", res.Dropped),
		slog.Int("defaulted", res.Defaulted),
		slog.Int("fk_fallbacks", res.Fallbacks),
		slog.Int("mismatches", res.Mismatch),
		slog.Duration("duration", res.Duration),
	)
}
