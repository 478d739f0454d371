package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edforge/qconvert/ent"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/edforge/qconvert/ent/fileresult"
	"github.com/edforge/qconvert/internal/pipeline"
)

// Run is one recorded converter invocation.
type Run struct {
	ID                   uuid.UUID
	StartedAt            time.Time
	FinishedAt           time.Time
	InputPath            string
	OutputPath           string
	DryRun               bool
	Total                int
	Converted            int
	PreValidationFailed  int
	ConversionFailed     int
	PostValidationFailed int
	Warnings             int
}

// FileResult is one recorded per-document outcome.
type FileResult struct {
	Filename   string
	QuestionID string
	Status     pipeline.Status
	Errors     []string
	Warnings   []string
}

// RunRepo persists conversion runs and their per-file outcomes.
type RunRepo interface {
	// Save stores a run and its file results, returning the run id.
	Save(ctx context.Context, run *Run, results []FileResult) (uuid.UUID, error)

	// Recent returns the most recent runs, newest first.
	Recent(ctx context.Context, limit int) ([]*Run, error)

	// Results returns the per-file outcomes of one run.
	Results(ctx context.Context, runID uuid.UUID) ([]*FileResult, error)
}

// ResultsFromOutcomes flattens pipeline outcomes into storable results.
func ResultsFromOutcomes(outcomes []pipeline.Outcome) []FileResult {
	results := make([]FileResult, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, FileResult{
			Filename:   o.Filename,
			QuestionID: o.QuestionID,
			Status:     o.Status,
			Errors:     o.Errors,
			Warnings:   o.Warnings,
		})
	}
	return results
}

type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Save(ctx context.Context, run *Run, results []FileResult) (uuid.UUID, error) {
	id := run.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.ConversionRun.Create().
		SetRunID(id).
		SetStartedAt(run.StartedAt).
		SetFinishedAt(run.FinishedAt).
		SetInputPath(run.InputPath).
		SetOutputPath(run.OutputPath).
		SetDryRun(run.DryRun).
		SetTotal(run.Total).
		SetConverted(run.Converted).
		SetPreValidationFailed(run.PreValidationFailed).
		SetConversionFailed(run.ConversionFailed).
		SetPostValidationFailed(run.PostValidationFailed).
		SetWarningCount(run.Warnings).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return uuid.Nil, fmt.Errorf("save run: %w", err)
	}

	if len(results) > 0 {
		creates := make([]*ent.FileResultCreate, 0, len(results))
		for _, res := range results {
			creates = append(creates, tx.FileResult.Create().
				SetRunID(id).
				SetFilename(res.Filename).
				SetQuestionID(res.QuestionID).
				SetStatus(string(res.Status)).
				SetErrors(res.Errors).
				SetWarnings(res.Warnings))
		}
		if _, err := tx.FileResult.CreateBulk(creates...).Save(ctx); err != nil {
			tx.Rollback()
			return uuid.Nil, fmt.Errorf("save file results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]*Run, error) {
	q := r.client.ConversionRun.Query().
		Order(ent.Desc(conversionrun.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	runs := make([]*Run, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, &Run{
			ID:                   row.RunID,
			StartedAt:            row.StartedAt,
			FinishedAt:           row.FinishedAt,
			InputPath:            row.InputPath,
			OutputPath:           row.OutputPath,
			DryRun:               row.DryRun,
			Total:                row.Total,
			Converted:            row.Converted,
			PreValidationFailed:  row.PreValidationFailed,
			ConversionFailed:     row.ConversionFailed,
			PostValidationFailed: row.PostValidationFailed,
			Warnings:             row.WarningCount,
		})
	}
	return runs, nil
}

func (r *runRepo) Results(ctx context.Context, runID uuid.UUID) ([]*FileResult, error) {
	rows, err := r.client.FileResult.Query().
		Where(fileresult.RunID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query file results: %w", err)
	}

	results := make([]*FileResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, &FileResult{
			Filename:   row.Filename,
			QuestionID: row.QuestionID,
			Status:     pipeline.Status(row.Status),
			Errors:     row.Errors,
			Warnings:   row.Warnings,
		})
	}
	return results, nil
}
