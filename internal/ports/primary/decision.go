package primary

import "context"

// DecisionService defines the primary port for decision recording.
type DecisionService interface {
	// RecordDecision appends a decision and returns its row ID. The decision
	// type defaults to "implementation".
	RecordDecision(ctx context.Context, req RecordDecisionRequest) (*RecordDecisionResponse, error)
}

// RecordDecisionRequest contains parameters for recording a decision.
type RecordDecisionRequest struct {
	SessionID    string
	Question     string
	Choice       string
	DecisionType string
	StepID       *int64
	FeatureName  string
	Alternatives []string
	Rationale    string
	Impact       string
}

// RecordDecisionResponse contains the result of recording a decision.
type RecordDecisionResponse struct {
	DecisionID int64 `json:"decision_id"`
}

// Decision is the caller-facing view of a decision row.
type Decision struct {
	ID           int64    `json:"id"`
	SessionID    string   `json:"session_id"`
	StepID       *int64   `json:"step_id,omitempty"`
	FeatureName  string   `json:"feature_name,omitempty"`
	Timestamp    int64    `json:"timestamp"`
	DecisionType string   `json:"decision_type"`
	Question     string   `json:"question"`
	Choice       string   `json:"choice"`
	Alternatives []string `json:"alternatives,omitempty"`
	Rationale    string   `json:"rationale,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}
