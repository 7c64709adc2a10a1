// Package primary defines the primary ports (driving interfaces) for the
// application, along with the view types callers receive.
package primary

import "context"

// SessionService defines the primary port for session operations.
type SessionService interface {
	// StartSession creates a new active session and returns its ID. Multiple
	// active sessions may coexist for the same project.
	StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResponse, error)

	// EndSession closes an active session, snapshotting its step and
	// agent-spawn counts. Ending an unknown or already-ended session
	// surfaces a not-found error.
	EndSession(ctx context.Context, req EndSessionRequest) error

	// GetActiveSession returns the most recently started active session,
	// optionally filtered by project, or nil when none exists.
	GetActiveSession(ctx context.Context, project string) (*Session, error)
}

// StartSessionRequest contains parameters for starting a session.
type StartSessionRequest struct {
	Project        string
	FeatureName    string
	InitialRequest string
}

// StartSessionResponse contains the result of starting a session.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

// EndSessionRequest contains parameters for ending a session.
type EndSessionRequest struct {
	SessionID string
	Summary   string
	Status    string // defaults to "completed"
}

// Session is the caller-facing view of a session row.
type Session struct {
	SessionID          string `json:"session_id"`
	Project            string `json:"project"`
	FeatureName        string `json:"feature_name,omitempty"`
	InitialRequest     string `json:"initial_request,omitempty"`
	StartedAt          int64  `json:"started_at"`
	EndedAt            *int64 `json:"ended_at,omitempty"`
	Status             string `json:"status"`
	Summary            string `json:"summary,omitempty"`
	TotalSteps         int    `json:"total_steps"`
	TotalAgentsSpawned int    `json:"total_agents_spawned"`
}
