package primary

import "context"

// QueryService defines the primary port for read-only queries and
// full-text search.
type QueryService interface {
	// GetRecentSessions returns sessions started within the trailing window
	// of days (default 7), newest first, capped at limit (default 20).
	GetRecentSessions(ctx context.Context, project string, days, limit int) ([]*Session, error)

	// GetSessionSteps returns all steps of a session ordered by step number.
	GetSessionSteps(ctx context.Context, sessionID string) ([]*Step, error)

	// GetRecentFileChanges returns file changes within the trailing window
	// of days (default 7), newest first, capped at limit (default 50).
	GetRecentFileChanges(ctx context.Context, days, limit int) ([]*FileChange, error)

	// GetFeatureDecisions returns all decisions for a feature ordered by
	// timestamp ascending.
	GetFeatureDecisions(ctx context.Context, featureName string) ([]*Decision, error)

	// SearchSteps runs a full-text match query over step free-text fields,
	// newest first, capped at limit (default 20).
	SearchSteps(ctx context.Context, query string, limit int) ([]*Step, error)

	// SearchDecisions runs a full-text match query over decision free-text
	// fields, newest first, capped at limit (default 20).
	SearchDecisions(ctx context.Context, query string, limit int) ([]*Decision, error)
}
