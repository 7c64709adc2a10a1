package primary

import "context"

// SummaryService defines the primary port for journey summaries.
type SummaryService interface {
	// GetJourneySummary aggregates sessions, features, file changes, and
	// decisions over the trailing window of days (default 30), optionally
	// filtered by project. All counts are zero, not absent, when nothing
	// matches.
	GetJourneySummary(ctx context.Context, project string, days int) (*JourneySummary, error)
}

// JourneySummary is the aggregated journey view over a trailing window.
type JourneySummary struct {
	PeriodDays      int               `json:"period_days"`
	Project         string            `json:"project"`
	Sessions        SessionSummary    `json:"sessions"`
	Features        FeatureSummary    `json:"features"`
	AgentUsage      map[string]int    `json:"agent_usage"`
	FileChanges     map[string]int    `json:"file_changes"`
	RecentDecisions []DecisionSummary `json:"recent_decisions"`
}

// SessionSummary holds session counts over the window.
type SessionSummary struct {
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
	TotalSteps        int `json:"total_steps"`
	TotalAgents       int `json:"total_agents"`
}

// FeatureSummary holds feature counts over the window. AvgStage is nil
// when no features match.
type FeatureSummary struct {
	TotalFeatures     int      `json:"total_features"`
	CompletedFeatures int      `json:"completed_features"`
	AvgStage          *float64 `json:"avg_stage"`
}

// DecisionSummary is the condensed decision entry of a summary.
type DecisionSummary struct {
	Question     string `json:"question"`
	Choice       string `json:"choice"`
	DecisionType string `json:"decision_type"`
}
