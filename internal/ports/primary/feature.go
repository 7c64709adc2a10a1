package primary

import "context"

// FeatureService defines the primary port for feature tracking.
type FeatureService interface {
	// UpsertFeature creates a feature by name or updates only the supplied
	// fields of an existing one. Supplying a stage also stamps that stage's
	// completion timestamp.
	UpsertFeature(ctx context.Context, req UpsertFeatureRequest) (*UpsertFeatureResponse, error)

	// MarkStageComplete sets the feature's current stage and stamps its
	// completion timestamp. Unknown features surface a not-found error.
	MarkStageComplete(ctx context.Context, featureName string, stage int) error

	// GetFeature retrieves a feature by name, or nil when absent.
	GetFeature(ctx context.Context, featureName string) (*Feature, error)
}

// UpsertFeatureRequest contains parameters for creating or updating a
// feature. Nil or empty optional fields are left untouched on update.
type UpsertFeatureRequest struct {
	FeatureName  string
	Project      string
	CurrentStage *int
	Status       string
	Description  string
}

// UpsertFeatureResponse contains the result of a feature upsert.
type UpsertFeatureResponse struct {
	FeatureID int64 `json:"feature_id"`
}

// Feature is the caller-facing view of a feature row. StageCompleted maps
// stage numbers 0..8 to completion timestamps.
type Feature struct {
	ID             int64     `json:"id"`
	FeatureName    string    `json:"feature_name"`
	Project        string    `json:"project"`
	CreatedAt      int64     `json:"created_at"`
	UpdatedAt      int64     `json:"updated_at"`
	CurrentStage   int       `json:"current_stage"`
	Status         string    `json:"status"`
	Description    string    `json:"description,omitempty"`
	StageCompleted [9]*int64 `json:"stage_completed"`
}
