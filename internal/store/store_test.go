package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/edforge/qconvert/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	id, err := repo.Save(ctx, &Run{
		StartedAt:           started,
		FinishedAt:          time.Now(),
		InputPath:           "/in",
		OutputPath:          "/out",
		Total:               3,
		Converted:           2,
		PreValidationFailed: 1,
		Warnings:            1,
	}, []FileResult{
		{Filename: "a.json", QuestionID: "a", Status: pipeline.StatusSuccess},
		{Filename: "b.json", QuestionID: "b", Status: pipeline.StatusSuccess},
		{
			Filename:   "c.json",
			QuestionID: "c",
			Status:     pipeline.StatusPreValidationFailed,
			Errors:     []string{"Part 1 (mcq): Missing required field 'stem'"},
			Warnings:   []string{"something minor"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	runs, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Total != 3 || run.Converted != 2 || run.PreValidationFailed != 1 {
		t.Errorf("run = %+v", run)
	}

	results, err := repo.Results(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	var failed *FileResult
	for _, r := range results {
		if r.Status == pipeline.StatusPreValidationFailed {
			failed = r
		}
	}
	if failed == nil || len(failed.Errors) != 1 {
		t.Errorf("failed result = %+v", failed)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, &Run{
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			InputPath:  "/in",
			OutputPath: "/out",
			Total:      i,
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
	}

	runs, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d", len(runs))
	}
	if runs[0].Total != 2 || runs[1].Total != 1 {
		t.Errorf("order wrong: %+v, %+v", runs[0], runs[1])
	}
}
