package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

func TestMemoryRepoLifecycle(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	review := Review{
		ID:         "r-1",
		DocumentID: "d-1",
		Status:     StatusQueued,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Create(ctx, review); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "r-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusQueued || got.DocumentID != "d-1" {
		t.Fatalf("unexpected review: %+v", got)
	}

	if err := repo.UpdateStatus(ctx, "r-1", StatusProcessing); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ = repo.GetByID(ctx, "r-1")
	if got.Status != StatusProcessing {
		t.Fatalf("status = %q, want processing", got.Status)
	}

	p := profile.Profile{Summary: "Engineer.", Skills: []string{"Go"}}
	rec := feedback.Record{Overall: feedback.Overall{Score: 0.75, Label: feedback.BandLabel(0.75)}}
	if err := repo.Complete(ctx, "r-1", p, rec); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, _ = repo.GetByID(ctx, "r-1")
	if got.Status != StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.Profile == nil || got.Profile.Summary != "Engineer." {
		t.Fatalf("profile not stored: %+v", got.Profile)
	}
	if got.Feedback == nil || got.Feedback.Overall.Score != 0.75 {
		t.Fatalf("feedback not stored: %+v", got.Feedback)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be set")
	}
}

func TestMemoryRepoFail(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Review{ID: "r-1", Status: StatusQueued}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Fail(ctx, "r-1", ErrorCodeMalformedInput, "input text is empty"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	got, _ := repo.GetByID(ctx, "r-1")
	if got.Status != StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.ErrorCode != ErrorCodeMalformedInput || got.ErrorMessage != "input text is empty" {
		t.Fatalf("error fields = %q %q", got.ErrorCode, got.ErrorMessage)
	}
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID err = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateStatus(ctx, "missing", StatusProcessing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateStatus err = %v, want ErrNotFound", err)
	}
	if err := repo.Fail(ctx, "missing", ErrorCodeInternal, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Fail err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"r-1", "r-2", "r-3"} {
		review := Review{ID: id, Status: StatusQueued, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, review); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r-3" || got[1].ID != "r-2" {
		t.Fatalf("unexpected page: %+v", got)
	}

	got, err = repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r-1" {
		t.Fatalf("unexpected second page: %+v", got)
	}

	got, err = repo.List(ctx, 10, 10)
	if err != nil {
		t.Fatalf("List past end: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %+v", got)
	}
}
