package primary

import "context"

// StepService defines the primary port for step recording.
type StepService interface {
	// RecordStep appends a step to a session, assigning the next contiguous
	// step number, and returns the new step's row ID.
	RecordStep(ctx context.Context, req RecordStepRequest) (*RecordStepResponse, error)
}

// RecordStepRequest contains parameters for recording a step. The file
// lists are stored as ordered JSON arrays and round-trip exactly.
type RecordStepRequest struct {
	SessionID     string
	StepType      string
	Action        string
	AgentName     string
	AgentModel    string
	PipelineStage *int
	Target        string
	Result        string
	FilesCreated  []string
	FilesModified []string
	FilesDeleted  []string
	Context       string
}

// RecordStepResponse contains the result of recording a step.
type RecordStepResponse struct {
	StepID int64 `json:"step_id"`
}

// Step is the caller-facing view of a step row.
type Step struct {
	ID            int64    `json:"id"`
	SessionID     string   `json:"session_id"`
	StepNumber    int      `json:"step_number"`
	StepType      string   `json:"step_type"`
	Timestamp     int64    `json:"timestamp"`
	AgentName     string   `json:"agent_name,omitempty"`
	AgentModel    string   `json:"agent_model,omitempty"`
	PipelineStage *int     `json:"pipeline_stage,omitempty"`
	Action        string   `json:"action"`
	Target        string   `json:"target,omitempty"`
	Result        string   `json:"result,omitempty"`
	FilesCreated  []string `json:"files_created,omitempty"`
	FilesModified []string `json:"files_modified,omitempty"`
	FilesDeleted  []string `json:"files_deleted,omitempty"`
	Context       string   `json:"context,omitempty"`
}
