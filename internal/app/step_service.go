package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// StepServiceImpl implements the StepService interface.
type StepServiceImpl struct {
	stepRepo    secondary.StepRepository
	sessionRepo secondary.SessionRepository
	now         func() int64
}

// NewStepService creates a new StepService with injected dependencies.
func NewStepService(stepRepo secondary.StepRepository, sessionRepo secondary.SessionRepository) *StepServiceImpl {
	return &StepServiceImpl{
		stepRepo:    stepRepo,
		sessionRepo: sessionRepo,
		now:         nowMs,
	}
}

// RecordStep appends a step to a session.
func (s *StepServiceImpl) RecordStep(ctx context.Context, req primary.RecordStepRequest) (*primary.RecordStepResponse, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("session id is required: %w", ErrValidation)
	}
	if req.StepType == "" {
		return nil, fmt.Errorf("step type is required: %w", ErrValidation)
	}
	if req.Action == "" {
		return nil, fmt.Errorf("action is required: %w", ErrValidation)
	}

	exists, err := s.sessionRepo.Exists(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("session %s: %w", req.SessionID, secondary.ErrNotFound)
	}

	record := &secondary.StepRecord{
		SessionID:     req.SessionID,
		StepType:      req.StepType,
		Timestamp:     s.now(),
		AgentName:     req.AgentName,
		AgentModel:    req.AgentModel,
		PipelineStage: req.PipelineStage,
		Action:        req.Action,
		Target:        req.Target,
		Result:        req.Result,
		FilesCreated:  req.FilesCreated,
		FilesModified: req.FilesModified,
		FilesDeleted:  req.FilesDeleted,
		Context:       req.Context,
	}

	stepID, err := s.stepRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record step: %w", err)
	}

	return &primary.RecordStepResponse{StepID: stepID}, nil
}

func stepView(record *secondary.StepRecord) *primary.Step {
	return &primary.Step{
		ID:            record.ID,
		SessionID:     record.SessionID,
		StepNumber:    record.StepNumber,
		StepType:      record.StepType,
		Timestamp:     record.Timestamp,
		AgentName:     record.AgentName,
		AgentModel:    record.AgentModel,
		PipelineStage: record.PipelineStage,
		Action:        record.Action,
		Target:        record.Target,
		Result:        record.Result,
		FilesCreated:  record.FilesCreated,
		FilesModified: record.FilesModified,
		FilesDeleted:  record.FilesDeleted,
		Context:       record.Context,
	}
}

// Ensure StepServiceImpl implements the interface
var _ primary.StepService = (*StepServiceImpl)(nil)
