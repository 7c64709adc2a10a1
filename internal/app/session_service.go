package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	sessionRepo secondary.SessionRepository
	now         func() int64
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(sessionRepo secondary.SessionRepository) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		now:         nowMs,
	}
}

// StartSession creates a new active session and returns its ID.
func (s *SessionServiceImpl) StartSession(ctx context.Context, req primary.StartSessionRequest) (*primary.StartSessionResponse, error) {
	if req.Project == "" {
		return nil, fmt.Errorf("project is required: %w", ErrValidation)
	}

	record := &secondary.SessionRecord{
		SessionID:      uuid.NewString(),
		Project:        req.Project,
		FeatureName:    req.FeatureName,
		InitialRequest: req.InitialRequest,
		StartedAt:      s.now(),
		Status:         "active",
	}

	if err := s.sessionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &primary.StartSessionResponse{SessionID: record.SessionID}, nil
}

// EndSession closes an active session, snapshotting its counts.
func (s *SessionServiceImpl) EndSession(ctx context.Context, req primary.EndSessionRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("session id is required: %w", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}
	if status != "completed" && status != "abandoned" {
		return fmt.Errorf("invalid final status %q: %w", status, ErrValidation)
	}

	return s.sessionRepo.End(ctx, req.SessionID, req.Summary, status, s.now())
}

// GetActiveSession returns the most recently started active session, or nil.
func (s *SessionServiceImpl) GetActiveSession(ctx context.Context, project string) (*primary.Session, error) {
	record, err := s.sessionRepo.GetActive(ctx, project)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return sessionView(record), nil
}

func sessionView(record *secondary.SessionRecord) *primary.Session {
	return &primary.Session{
		SessionID:          record.SessionID,
		Project:            record.Project,
		FeatureName:        record.FeatureName,
		InitialRequest:     record.InitialRequest,
		StartedAt:          record.StartedAt,
		EndedAt:            record.EndedAt,
		Status:             record.Status,
		Summary:            record.Summary,
		TotalSteps:         record.TotalSteps,
		TotalAgentsSpawned: record.TotalAgentsSpawned,
	}
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}

// Ensure SessionServiceImpl implements the interface
var _ primary.SessionService = (*SessionServiceImpl)(nil)
