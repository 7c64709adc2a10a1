package primary

import "context"

// RecallService defines the primary port for the "what was happening last"
// view.
type RecallService interface {
	// GetLastSessionInfo reconstructs the recall view. In global mode it
	// covers the 10 most recent sessions across all projects; otherwise it
	// describes the single most recent session (optionally filtered by
	// project). Returns nil (not an error) when no session matches.
	GetLastSessionInfo(ctx context.Context, project string, globalMode bool) (*RecallView, error)

	// FormatText renders the recall view as the fixed-layout text report.
	FormatText(view *RecallView) string
}

// RecallView is the derived recall result. Mode is "project" or "global";
// the Sessions list is populated only in global mode.
type RecallView struct {
	Mode string `json:"mode"`

	// Global mode
	Sessions []*RecallSession `json:"sessions,omitempty"`

	// Project mode
	SessionID      string    `json:"session_id,omitempty"`
	Project        string    `json:"project,omitempty"`
	FeatureName    string    `json:"feature_name,omitempty"`
	CurrentStage   int       `json:"current_stage"`
	StageName      string    `json:"stage_name,omitempty"`
	NextStage      *int      `json:"next_stage,omitempty"`
	NextStageName  string    `json:"next_stage_name,omitempty"`
	NextAgent      string    `json:"next_agent,omitempty"`
	StartedAt      int64     `json:"started_at,omitempty"`
	EndedAt        *int64    `json:"ended_at,omitempty"`
	Status         string    `json:"status,omitempty"`
	FeatureStatus  string    `json:"feature_status,omitempty"`
	LastActions    []string  `json:"last_actions,omitempty"`
	LastDecision   *Decision `json:"last_decision,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
	TotalSteps     int       `json:"total_steps"`
	TotalAgents    int       `json:"total_agents"`
}

// RecallSession is one entry of the global recall list, a session annotated
// with its linked feature's stage and status when one exists.
type RecallSession struct {
	SessionID     string `json:"session_id"`
	Project       string `json:"project"`
	FeatureName   string `json:"feature_name,omitempty"`
	Status        string `json:"status"`
	StartedAt     int64  `json:"started_at"`
	EndedAt       *int64 `json:"ended_at,omitempty"`
	CurrentStage  *int   `json:"current_stage,omitempty"`
	FeatureStatus string `json:"feature_status,omitempty"`
}
