package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

const (
	defaultSummaryDays   = 30
	summaryDecisionLimit = 10
	millisecondsPerDay   = 24 * 60 * 60 * 1000
)

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	sessionRepo    secondary.SessionRepository
	featureRepo    secondary.FeatureRepository
	stepRepo       secondary.StepRepository
	fileChangeRepo secondary.FileChangeRepository
	decisionRepo   secondary.DecisionRepository
	now            func() int64
}

// NewSummaryService creates a new SummaryService with injected dependencies.
func NewSummaryService(
	sessionRepo secondary.SessionRepository,
	featureRepo secondary.FeatureRepository,
	stepRepo secondary.StepRepository,
	fileChangeRepo secondary.FileChangeRepository,
	decisionRepo secondary.DecisionRepository,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		sessionRepo:    sessionRepo,
		featureRepo:    featureRepo,
		stepRepo:       stepRepo,
		fileChangeRepo: fileChangeRepo,
		decisionRepo:   decisionRepo,
		now:            nowMs,
	}
}

// GetJourneySummary aggregates sessions, features, agent usage, file
// changes, and decisions over the trailing window of days.
func (s *SummaryServiceImpl) GetJourneySummary(ctx context.Context, project string, days int) (*primary.JourneySummary, error) {
	if days <= 0 {
		days = defaultSummaryDays
	}
	cutoff := s.now() - int64(days)*millisecondsPerDay

	sessionStats, err := s.sessionRepo.Stats(ctx, project, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sessions: %w", err)
	}

	featureStats, err := s.featureRepo.Stats(ctx, project, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate features: %w", err)
	}

	agentUsage, err := s.stepRepo.AgentSpawnCounts(ctx, project, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate agent usage: %w", err)
	}

	fileChanges, err := s.fileChangeRepo.CountsByType(ctx, project, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate file changes: %w", err)
	}

	decisions, err := s.decisionRepo.ListRecent(ctx, project, cutoff, summaryDecisionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent decisions: %w", err)
	}

	summaryProject := project
	if summaryProject == "" {
		summaryProject = "all"
	}

	summary := &primary.JourneySummary{
		PeriodDays: days,
		Project:    summaryProject,
		Sessions: primary.SessionSummary{
			TotalSessions:     sessionStats.TotalSessions,
			CompletedSessions: sessionStats.CompletedSessions,
			TotalSteps:        sessionStats.TotalSteps,
			TotalAgents:       sessionStats.TotalAgentsSpawned,
		},
		Features: primary.FeatureSummary{
			TotalFeatures:     featureStats.TotalFeatures,
			CompletedFeatures: featureStats.CompletedFeatures,
			AvgStage:          featureStats.AvgStage,
		},
		AgentUsage:  agentUsage,
		FileChanges: fileChanges,
	}

	for _, d := range decisions {
		summary.RecentDecisions = append(summary.RecentDecisions, primary.DecisionSummary{
			Question:     d.Question,
			Choice:       d.Choice,
			DecisionType: d.DecisionType,
		})
	}

	return summary, nil
}

// Ensure SummaryServiceImpl implements the interface
var _ primary.SummaryService = (*SummaryServiceImpl)(nil)
