package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// FileChangeServiceImpl implements the FileChangeService interface.
type FileChangeServiceImpl struct {
	fileChangeRepo secondary.FileChangeRepository
	sessionRepo    secondary.SessionRepository
	now            func() int64
}

// NewFileChangeService creates a new FileChangeService with injected
// dependencies.
func NewFileChangeService(fileChangeRepo secondary.FileChangeRepository, sessionRepo secondary.SessionRepository) *FileChangeServiceImpl {
	return &FileChangeServiceImpl{
		fileChangeRepo: fileChangeRepo,
		sessionRepo:    sessionRepo,
		now:            nowMs,
	}
}

// RecordFileChange appends a file change.
func (s *FileChangeServiceImpl) RecordFileChange(ctx context.Context, req primary.RecordFileChangeRequest) (*primary.RecordFileChangeResponse, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("session id is required: %w", ErrValidation)
	}
	if req.FilePath == "" {
		return nil, fmt.Errorf("file path is required: %w", ErrValidation)
	}
	if req.ChangeType == "" {
		return nil, fmt.Errorf("change type is required: %w", ErrValidation)
	}
	if req.LinesAdded != nil && *req.LinesAdded < 0 {
		return nil, fmt.Errorf("lines added must not be negative: %w", ErrValidation)
	}
	if req.LinesRemoved != nil && *req.LinesRemoved < 0 {
		return nil, fmt.Errorf("lines removed must not be negative: %w", ErrValidation)
	}

	exists, err := s.sessionRepo.Exists(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("session %s: %w", req.SessionID, secondary.ErrNotFound)
	}

	record := &secondary.FileChangeRecord{
		SessionID:    req.SessionID,
		StepID:       req.StepID,
		Timestamp:    s.now(),
		FilePath:     req.FilePath,
		ChangeType:   req.ChangeType,
		OldPath:      req.OldPath,
		Description:  req.Description,
		LinesAdded:   req.LinesAdded,
		LinesRemoved: req.LinesRemoved,
	}

	changeID, err := s.fileChangeRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record file change: %w", err)
	}

	return &primary.RecordFileChangeResponse{ChangeID: changeID}, nil
}

func fileChangeView(record *secondary.FileChangeRecord) *primary.FileChange {
	return &primary.FileChange{
		ID:           record.ID,
		SessionID:    record.SessionID,
		StepID:       record.StepID,
		Timestamp:    record.Timestamp,
		FilePath:     record.FilePath,
		ChangeType:   record.ChangeType,
		OldPath:      record.OldPath,
		Description:  record.Description,
		LinesAdded:   record.LinesAdded,
		LinesRemoved: record.LinesRemoved,
	}
}

// Ensure FileChangeServiceImpl implements the interface
var _ primary.FileChangeService = (*FileChangeServiceImpl)(nil)
