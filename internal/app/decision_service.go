package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// DecisionServiceImpl implements the DecisionService interface.
type DecisionServiceImpl struct {
	decisionRepo secondary.DecisionRepository
	sessionRepo  secondary.SessionRepository
	now          func() int64
}

// NewDecisionService creates a new DecisionService with injected
// dependencies.
func NewDecisionService(decisionRepo secondary.DecisionRepository, sessionRepo secondary.SessionRepository) *DecisionServiceImpl {
	return &DecisionServiceImpl{
		decisionRepo: decisionRepo,
		sessionRepo:  sessionRepo,
		now:          nowMs,
	}
}

// RecordDecision appends a decision.
func (s *DecisionServiceImpl) RecordDecision(ctx context.Context, req primary.RecordDecisionRequest) (*primary.RecordDecisionResponse, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("session id is required: %w", ErrValidation)
	}
	if req.Question == "" {
		return nil, fmt.Errorf("question is required: %w", ErrValidation)
	}
	if req.Choice == "" {
		return nil, fmt.Errorf("choice is required: %w", ErrValidation)
	}

	exists, err := s.sessionRepo.Exists(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("session %s: %w", req.SessionID, secondary.ErrNotFound)
	}

	record := &secondary.DecisionRecord{
		SessionID:    req.SessionID,
		StepID:       req.StepID,
		FeatureName:  req.FeatureName,
		Timestamp:    s.now(),
		DecisionType: req.DecisionType,
		Question:     req.Question,
		Choice:       req.Choice,
		Alternatives: req.Alternatives,
		Rationale:    req.Rationale,
		Impact:       req.Impact,
	}

	decisionID, err := s.decisionRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	return &primary.RecordDecisionResponse{DecisionID: decisionID}, nil
}

func decisionView(record *secondary.DecisionRecord) *primary.Decision {
	return &primary.Decision{
		ID:           record.ID,
		SessionID:    record.SessionID,
		StepID:       record.StepID,
		FeatureName:  record.FeatureName,
		Timestamp:    record.Timestamp,
		DecisionType: record.DecisionType,
		Question:     record.Question,
		Choice:       record.Choice,
		Alternatives: record.Alternatives,
		Rationale:    record.Rationale,
		Impact:       record.Impact,
	}
}

// Ensure DecisionServiceImpl implements the interface
var _ primary.DecisionService = (*DecisionServiceImpl)(nil)
