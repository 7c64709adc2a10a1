package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/journey/internal/adapters/sqlite"
	"github.com/example/journey/internal/ports/secondary"
)

func TestFileChangeRepository_CreateAndListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewFileChangeRepository(db)
	ctx := context.Background()

	sessionID := seedSession(t, db, "", "", 1000)

	added := 12
	removed := 3
	change := &secondary.FileChangeRecord{
		SessionID:    sessionID,
		Timestamp:    1100,
		FilePath:     "internal/db/schema.go",
		ChangeType:   "modified",
		Description:  "add index",
		LinesAdded:   &added,
		LinesRemoved: &removed,
	}
	id, err := repo.Create(ctx, change)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == 0 {
		t.Error("expected nonzero change id")
	}

	changes, err := repo.ListRecent(ctx, 0, 50)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	got := changes[0]
	if got.FilePath != "internal/db/schema.go" || got.ChangeType != "modified" {
		t.Errorf("change fields did not round-trip: %+v", got)
	}
	if got.LinesAdded == nil || *got.LinesAdded != 12 {
		t.Errorf("expected 12 lines added, got %v", got.LinesAdded)
	}
	if got.StepID != nil {
		t.Errorf("expected nil step id, got %v", *got.StepID)
	}
}

func TestFileChangeRepository_Create_RenameWithStepLink(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewFileChangeRepository(db)
	ctx := context.Background()

	sessionID := seedSession(t, db, "", "", 1000)
	mustExec(t, db, "INSERT INTO steps (session_id, step_number, step_type, timestamp, action) VALUES (?, 1, 'file_edit', 1050, 'rename')", sessionID)

	stepID := int64(1)
	change := &secondary.FileChangeRecord{
		SessionID:  sessionID,
		StepID:     &stepID,
		Timestamp:  1100,
		FilePath:   "pkg/new.go",
		ChangeType: "renamed",
		OldPath:    "pkg/old.go",
	}
	if _, err := repo.Create(ctx, change); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	changes, _ := repo.ListRecent(ctx, 0, 50)
	if changes[0].OldPath != "pkg/old.go" {
		t.Errorf("expected old path, got %q", changes[0].OldPath)
	}
	if changes[0].StepID == nil || *changes[0].StepID != 1 {
		t.Errorf("expected step link, got %v", changes[0].StepID)
	}
}

func TestFileChangeRepository_ListRecent_WindowAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewFileChangeRepository(db)
	ctx := context.Background()

	sessionID := seedSession(t, db, "", "", 1000)
	for _, ts := range []int64{100, 2000, 3000} {
		change := &secondary.FileChangeRecord{SessionID: sessionID, Timestamp: ts, FilePath: "f.go", ChangeType: "modified"}
		if _, err := repo.Create(ctx, change); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	changes, err := repo.ListRecent(ctx, 1000, 50)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes inside window, got %d", len(changes))
	}
	if changes[0].Timestamp != 3000 {
		t.Errorf("expected newest first, got %d", changes[0].Timestamp)
	}
}

func TestFileChangeRepository_CountsByType(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewFileChangeRepository(db)
	ctx := context.Background()

	sessionID := seedSession(t, db, "", "proj", 1000)
	for _, changeType := range []string{"created", "modified", "modified", "deleted"} {
		change := &secondary.FileChangeRecord{SessionID: sessionID, Timestamp: 1100, FilePath: "f.go", ChangeType: changeType}
		if _, err := repo.Create(ctx, change); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	counts, err := repo.CountsByType(ctx, "proj", 0)
	if err != nil {
		t.Fatalf("CountsByType failed: %v", err)
	}
	if counts["modified"] != 2 || counts["created"] != 1 || counts["deleted"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	empty, err := repo.CountsByType(ctx, "other-project", 0)
	if err != nil {
		t.Fatalf("CountsByType failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty counts for other project, got %v", empty)
	}
}
