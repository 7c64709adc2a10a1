package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// FeatureServiceImpl implements the FeatureService interface.
type FeatureServiceImpl struct {
	featureRepo secondary.FeatureRepository
	now         func() int64
}

// NewFeatureService creates a new FeatureService with injected dependencies.
func NewFeatureService(featureRepo secondary.FeatureRepository) *FeatureServiceImpl {
	return &FeatureServiceImpl{
		featureRepo: featureRepo,
		now:         nowMs,
	}
}

// UpsertFeature creates a feature by name or updates the supplied fields.
func (s *FeatureServiceImpl) UpsertFeature(ctx context.Context, req primary.UpsertFeatureRequest) (*primary.UpsertFeatureResponse, error) {
	if req.FeatureName == "" {
		return nil, fmt.Errorf("feature name is required: %w", ErrValidation)
	}
	if req.Project == "" {
		return nil, fmt.Errorf("project is required: %w", ErrValidation)
	}
	if req.CurrentStage != nil {
		if err := validateStage(*req.CurrentStage); err != nil {
			return nil, err
		}
	}

	featureID, err := s.featureRepo.Upsert(ctx, secondary.UpsertFeatureParams{
		FeatureName:  req.FeatureName,
		Project:      req.Project,
		CurrentStage: req.CurrentStage,
		Status:       req.Status,
		Description:  req.Description,
		Now:          s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert feature: %w", err)
	}

	return &primary.UpsertFeatureResponse{FeatureID: featureID}, nil
}

// MarkStageComplete sets the feature's current stage and stamps its
// completion timestamp.
func (s *FeatureServiceImpl) MarkStageComplete(ctx context.Context, featureName string, stage int) error {
	if featureName == "" {
		return fmt.Errorf("feature name is required: %w", ErrValidation)
	}
	if err := validateStage(stage); err != nil {
		return err
	}

	return s.featureRepo.MarkStageComplete(ctx, featureName, stage, s.now())
}

// GetFeature retrieves a feature by name, or nil when absent.
func (s *FeatureServiceImpl) GetFeature(ctx context.Context, featureName string) (*primary.Feature, error) {
	record, err := s.featureRepo.GetByName(ctx, featureName)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return featureView(record), nil
}

// validateStage rejects stage numbers outside the fixed pipeline bounds.
// Out-of-range values are rejected, not clamped.
func validateStage(stage int) error {
	if stage < 0 || stage > 8 {
		return fmt.Errorf("stage %d out of range 0..8: %w", stage, ErrValidation)
	}
	return nil
}

func featureView(record *secondary.FeatureRecord) *primary.Feature {
	return &primary.Feature{
		ID:             record.ID,
		FeatureName:    record.FeatureName,
		Project:        record.Project,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
		CurrentStage:   record.CurrentStage,
		Status:         record.Status,
		Description:    record.Description,
		StageCompleted: record.StageCompleted,
	}
}

// Ensure FeatureServiceImpl implements the interface
var _ primary.FeatureService = (*FeatureServiceImpl)(nil)
