package app

import (
	"context"
	"fmt"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

// The pipeline is a fixed sequence of nine stages. stageNames and
// stageAgents map stage numbers to their display name and the agent
// responsible for that stage.
var stageNames = [9]string{
	"Research",
	"PRD Creation",
	"PRD Review",
	"Tech Spec",
	"PM Spec Review",
	"SA Spec Review",
	"Test Plan",
	"Implementation",
	"Code Review",
}

var stageAgents = [9]string{
	"Metis",
	"Athena",
	"Athena",
	"Hephaestus",
	"Athena",
	"Apollo",
	"Artemis",
	"Ares",
	"Hermes",
}

const (
	globalRecallLimit = 10
	recallStepCount   = 5
	lastStage         = 8
)

// RecallServiceImpl implements the RecallService interface. It fans in
// session, feature, step, and decision data into the derived recall view.
type RecallServiceImpl struct {
	sessionRepo  secondary.SessionRepository
	featureRepo  secondary.FeatureRepository
	stepRepo     secondary.StepRepository
	decisionRepo secondary.DecisionRepository
	now          func() int64
}

// NewRecallService creates a new RecallService with injected dependencies.
func NewRecallService(
	sessionRepo secondary.SessionRepository,
	featureRepo secondary.FeatureRepository,
	stepRepo secondary.StepRepository,
	decisionRepo secondary.DecisionRepository,
) *RecallServiceImpl {
	return &RecallServiceImpl{
		sessionRepo:  sessionRepo,
		featureRepo:  featureRepo,
		stepRepo:     stepRepo,
		decisionRepo: decisionRepo,
		now:          nowMs,
	}
}

// GetLastSessionInfo reconstructs the recall view. Returns nil when no
// session matches.
func (s *RecallServiceImpl) GetLastSessionInfo(ctx context.Context, project string, globalMode bool) (*primary.RecallView, error) {
	if globalMode {
		return s.globalRecall(ctx)
	}
	return s.projectRecall(ctx, project)
}

func (s *RecallServiceImpl) globalRecall(ctx context.Context) (*primary.RecallView, error) {
	sessions, err := s.sessionRepo.ListRecent(ctx, "", 0, globalRecallLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	view := &primary.RecallView{Mode: "global"}
	for _, session := range sessions {
		entry := &primary.RecallSession{
			SessionID:   session.SessionID,
			Project:     session.Project,
			FeatureName: session.FeatureName,
			Status:      session.Status,
			StartedAt:   session.StartedAt,
			EndedAt:     session.EndedAt,
		}

		if session.FeatureName != "" {
			feature, err := s.featureRepo.GetByName(ctx, session.FeatureName)
			if err != nil {
				return nil, fmt.Errorf("failed to look up feature: %w", err)
			}
			if feature != nil {
				stage := feature.CurrentStage
				entry.CurrentStage = &stage
				entry.FeatureStatus = feature.Status
			}
		}

		view.Sessions = append(view.Sessions, entry)
	}

	return view, nil
}

func (s *RecallServiceImpl) projectRecall(ctx context.Context, project string) (*primary.RecallView, error) {
	session, err := s.sessionRepo.GetMostRecent(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	var feature *secondary.FeatureRecord
	if session.FeatureName != "" {
		feature, err = s.featureRepo.GetByName(ctx, session.FeatureName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up feature: %w", err)
		}
	}

	steps, err := s.stepRepo.ListRecent(ctx, session.SessionID, recallStepCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent steps: %w", err)
	}
	// Re-order oldest first for display.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	lastDecision, err := s.decisionRepo.GetMostRecent(ctx, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last decision: %w", err)
	}

	currentStage := 0
	if feature != nil {
		currentStage = feature.CurrentStage
	}

	view := &primary.RecallView{
		Mode:         "project",
		SessionID:    session.SessionID,
		Project:      session.Project,
		FeatureName:  session.FeatureName,
		CurrentStage: currentStage,
		StageName:    stageNames[currentStage],
		StartedAt:    session.StartedAt,
		EndedAt:      session.EndedAt,
		Status:       session.Status,
		TotalSteps:   session.TotalSteps,
		TotalAgents:  session.TotalAgentsSpawned,
	}

	if currentStage < lastStage {
		next := currentStage + 1
		view.NextStage = &next
		view.NextStageName = stageNames[next]
		view.NextAgent = stageAgents[next]
	}

	for _, step := range steps {
		action := step.Action
		if step.AgentName != "" {
			action = fmt.Sprintf("%s: %s", capitalize(step.AgentName), action)
		}
		view.LastActions = append(view.LastActions, action)
	}

	if lastDecision != nil {
		view.LastDecision = decisionView(lastDecision)
	}

	if feature != nil {
		view.FeatureStatus = feature.Status
		switch {
		case feature.Status == "in_progress" && view.NextStage != nil:
			view.Recommendation = fmt.Sprintf(
				"Continue with Stage %d (%s - %s)?",
				*view.NextStage, view.NextAgent, view.NextStageName,
			)
		case feature.Status == "completed":
			view.Recommendation = "Feature completed! Start a new session to begin the next one."
		}
	}

	return view, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// Ensure RecallServiceImpl implements the interface
var _ primary.RecallService = (*RecallServiceImpl)(nil)
