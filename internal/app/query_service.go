package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

const (
	defaultQueryDays       = 7
	defaultSessionLimit    = 20
	defaultFileChangeLimit = 50
	defaultSearchLimit     = 20
)

// QueryServiceImpl implements the QueryService interface.
type QueryServiceImpl struct {
	sessionRepo    secondary.SessionRepository
	stepRepo       secondary.StepRepository
	fileChangeRepo secondary.FileChangeRepository
	decisionRepo   secondary.DecisionRepository
	now            func() int64
}

// NewQueryService creates a new QueryService with injected dependencies.
func NewQueryService(
	sessionRepo secondary.SessionRepository,
	stepRepo secondary.StepRepository,
	fileChangeRepo secondary.FileChangeRepository,
	decisionRepo secondary.DecisionRepository,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		sessionRepo:    sessionRepo,
		stepRepo:       stepRepo,
		fileChangeRepo: fileChangeRepo,
		decisionRepo:   decisionRepo,
		now:            nowMs,
	}
}

// GetRecentSessions returns sessions started within the trailing window.
func (s *QueryServiceImpl) GetRecentSessions(ctx context.Context, project string, days, limit int) ([]*primary.Session, error) {
	if days <= 0 {
		days = defaultQueryDays
	}
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	cutoff := s.now() - int64(days)*millisecondsPerDay

	records, err := s.sessionRepo.ListRecent(ctx, project, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*primary.Session, 0, len(records))
	for _, record := range records {
		sessions = append(sessions, sessionView(record))
	}
	return sessions, nil
}

// GetSessionSteps returns all steps of a session in recorded order.
func (s *QueryServiceImpl) GetSessionSteps(ctx context.Context, sessionID string) ([]*primary.Step, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	records, err := s.stepRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}

	steps := make([]*primary.Step, 0, len(records))
	for _, record := range records {
		steps = append(steps, stepView(record))
	}
	return steps, nil
}

// GetRecentFileChanges returns file changes within the trailing window.
func (s *QueryServiceImpl) GetRecentFileChanges(ctx context.Context, days, limit int) ([]*primary.FileChange, error) {
	if days <= 0 {
		days = defaultQueryDays
	}
	if limit <= 0 {
		limit = defaultFileChangeLimit
	}
	cutoff := s.now() - int64(days)*millisecondsPerDay

	records, err := s.fileChangeRepo.ListRecent(ctx, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list file changes: %w", err)
	}

	changes := make([]*primary.FileChange, 0, len(records))
	for _, record := range records {
		changes = append(changes, fileChangeView(record))
	}
	return changes, nil
}

// GetFeatureDecisions returns all decisions for a feature, oldest first.
func (s *QueryServiceImpl) GetFeatureDecisions(ctx context.Context, featureName string) ([]*primary.Decision, error) {
	if strings.TrimSpace(featureName) == "" {
		return nil, fmt.Errorf("%w: feature name is required", ErrValidation)
	}

	records, err := s.decisionRepo.ListByFeature(ctx, featureName)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	decisions := make([]*primary.Decision, 0, len(records))
	for _, record := range records {
		decisions = append(decisions, decisionView(record))
	}
	return decisions, nil
}

// SearchSteps runs a full-text match over step free-text fields.
func (s *QueryServiceImpl) SearchSteps(ctx context.Context, query string, limit int) ([]*primary.Step, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	records, err := s.stepRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search steps: %w", err)
	}

	steps := make([]*primary.Step, 0, len(records))
	for _, record := range records {
		steps = append(steps, stepView(record))
	}
	return steps, nil
}

// SearchDecisions runs a full-text match over decision free-text fields.
func (s *QueryServiceImpl) SearchDecisions(ctx context.Context, query string, limit int) ([]*primary.Decision, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	records, err := s.decisionRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search decisions: %w", err)
	}

	decisions := make([]*primary.Decision, 0, len(records))
	for _, record := range records {
		decisions = append(decisions, decisionView(record))
	}
	return decisions, nil
}

// Ensure QueryServiceImpl implements the interface
var _ primary.QueryService = (*QueryServiceImpl)(nil)
