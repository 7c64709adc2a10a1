// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the storage engine.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced session, feature, or step does
// not exist. Callers detect it with errors.Is.
var ErrNotFound = errors.New("not found")

// SessionRepository defines the secondary port for session persistence.
// Sessions are never deleted.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *SessionRecord) error

	// GetByID retrieves a session by its ID.
	GetByID(ctx context.Context, sessionID string) (*SessionRecord, error)

	// End closes an active session: snapshots step and agent-spawn counts,
	// stamps ended_at, and writes the final status and summary. Returns
	// ErrNotFound when no active session with the given ID exists, which
	// also makes the snapshot immutable against repeated calls.
	End(ctx context.Context, sessionID, summary, status string, endedAt int64) error

	// GetActive returns the most recently started active session, optionally
	// filtered by project. Returns nil (not an error) when none exists.
	GetActive(ctx context.Context, project string) (*SessionRecord, error)

	// GetMostRecent returns the most recently started session regardless of
	// status, optionally filtered by project. Nil when none exists.
	GetMostRecent(ctx context.Context, project string) (*SessionRecord, error)

	// ListRecent returns sessions started after cutoff (cutoff 0 means no
	// window), newest first, capped at limit.
	ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*SessionRecord, error)

	// Exists reports whether a session with the given ID exists.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// Stats aggregates session counts and snapshotted step/agent totals for
	// sessions started after cutoff.
	Stats(ctx context.Context, project string, cutoff int64) (*SessionStats, error)
}

// SessionRecord represents a session row.
type SessionRecord struct {
	SessionID          string
	Project            string
	FeatureName        string
	InitialRequest     string
	StartedAt          int64
	EndedAt            *int64
	Status             string
	Summary            string
	TotalSteps         int
	TotalAgentsSpawned int
}

// SessionStats holds aggregate session counts over a window.
type SessionStats struct {
	TotalSessions      int
	CompletedSessions  int
	TotalSteps         int
	TotalAgentsSpawned int
}

// StepRepository defines the secondary port for step persistence.
// Steps are append-only.
type StepRepository interface {
	// Create assigns the next step_number for the owning session and inserts
	// the step in one transaction, serializing number assignment against
	// concurrent writers. Returns the new row ID and sets record.StepNumber.
	Create(ctx context.Context, step *StepRecord) (int64, error)

	// ListBySession returns all steps of a session ordered by step_number
	// ascending.
	ListBySession(ctx context.Context, sessionID string) ([]*StepRecord, error)

	// ListRecent returns the most recent steps of a session, newest first,
	// capped at limit.
	ListRecent(ctx context.Context, sessionID string, limit int) ([]*StepRecord, error)

	// Search runs a full-text match over action/target/result/context and
	// returns matching steps newest first, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*StepRecord, error)

	// AgentSpawnCounts counts agent_spawn steps after cutoff grouped by
	// agent name, optionally filtered by the owning session's project.
	AgentSpawnCounts(ctx context.Context, project string, cutoff int64) (map[string]int, error)
}

// StepRecord represents a step row. The Files* slices round-trip exactly:
// ordering preserved, no deduplication.
type StepRecord struct {
	ID            int64
	SessionID     string
	StepNumber    int
	StepType      string
	Timestamp     int64
	AgentName     string
	AgentModel    string
	PipelineStage *int
	Action        string
	Target        string
	Result        string
	FilesCreated  []string
	FilesModified []string
	FilesDeleted  []string
	Context       string
}

// FeatureRepository defines the secondary port for feature persistence.
type FeatureRepository interface {
	// Upsert creates the feature if absent (stage 0, in_progress unless
	// overridden) or applies only the supplied fields if present, always
	// touching updated_at. Supplying a stage on update also stamps that
	// stage's completion timestamp. Returns the feature row ID.
	Upsert(ctx context.Context, params UpsertFeatureParams) (int64, error)

	// GetByName retrieves a feature. Returns nil (not an error) when absent.
	GetByName(ctx context.Context, featureName string) (*FeatureRecord, error)

	// MarkStageComplete sets current_stage and stamps the stage's completion
	// timestamp. Returns ErrNotFound when the feature does not exist.
	MarkStageComplete(ctx context.Context, featureName string, stage int, now int64) error

	// Stats aggregates feature counts and the average stage for features
	// created after cutoff. AvgStage is nil when no features match.
	Stats(ctx context.Context, project string, cutoff int64) (*FeatureStats, error)
}

// UpsertFeatureParams carries the fields supplied to Upsert. Nil or empty
// fields are left untouched on update.
type UpsertFeatureParams struct {
	FeatureName  string
	Project      string
	CurrentStage *int
	Status       string
	Description  string
	Now          int64
}

// FeatureRecord represents a feature row. StageCompleted holds the nine
// fixed stage-completion timestamps indexed by stage number.
type FeatureRecord struct {
	ID             int64
	FeatureName    string
	Project        string
	CreatedAt      int64
	UpdatedAt      int64
	CurrentStage   int
	Status         string
	Description    string
	StageCompleted [9]*int64
}

// FeatureStats holds aggregate feature counts over a window.
type FeatureStats struct {
	TotalFeatures     int
	CompletedFeatures int
	AvgStage          *float64
}

// FileChangeRepository defines the secondary port for file-change
// persistence. File changes are append-only.
type FileChangeRepository interface {
	// Create inserts a file change and returns its row ID.
	Create(ctx context.Context, change *FileChangeRecord) (int64, error)

	// ListRecent returns file changes recorded after cutoff, newest first,
	// capped at limit.
	ListRecent(ctx context.Context, cutoff int64, limit int) ([]*FileChangeRecord, error)

	// CountsByType counts file changes after cutoff grouped by change type,
	// optionally filtered by the owning session's project.
	CountsByType(ctx context.Context, project string, cutoff int64) (map[string]int, error)
}

// FileChangeRecord represents a file-change row.
type FileChangeRecord struct {
	ID           int64
	SessionID    string
	StepID       *int64
	Timestamp    int64
	FilePath     string
	ChangeType   string
	OldPath      string
	Description  string
	LinesAdded   *int
	LinesRemoved *int
}

// DecisionRepository defines the secondary port for decision persistence.
// Decisions are append-only.
type DecisionRepository interface {
	// Create inserts a decision and returns its row ID.
	Create(ctx context.Context, decision *DecisionRecord) (int64, error)

	// GetMostRecent returns the latest decision of a session, or nil when
	// the session has none.
	GetMostRecent(ctx context.Context, sessionID string) (*DecisionRecord, error)

	// ListByFeature returns all decisions for a feature ordered by timestamp
	// ascending.
	ListByFeature(ctx context.Context, featureName string) ([]*DecisionRecord, error)

	// ListRecent returns decisions recorded after cutoff, newest first,
	// capped at limit, optionally filtered by the owning session's project.
	ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*DecisionRecord, error)

	// Search runs a full-text match over question/choice/rationale and
	// returns matching decisions newest first, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*DecisionRecord, error)
}

// DecisionRecord represents a decision row. Alternatives round-trips as an
// ordered list.
type DecisionRecord struct {
	ID           int64
	SessionID    string
	StepID       *int64
	FeatureName  string
	Timestamp    int64
	DecisionType string
	Question     string
	Choice       string
	Alternatives []string
	Rationale    string
	Impact       string
}
