package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/journey/internal/ports/secondary"
)

func newTestQueryService() (*QueryServiceImpl, *mockSessionRepository, *mockStepRepository, *mockFileChangeRepository, *mockDecisionRepository) {
	sessionRepo := newMockSessionRepository()
	stepRepo := newMockStepRepository()
	fileChangeRepo := newMockFileChangeRepository()
	decisionRepo := newMockDecisionRepository()
	service := NewQueryService(sessionRepo, stepRepo, fileChangeRepo, decisionRepo)
	return service, sessionRepo, stepRepo, fileChangeRepo, decisionRepo
}

func TestGetRecentSessions_WindowFilter(t *testing.T) {
	service, sessionRepo, _, _, _ := newTestQueryService()
	now := int64(10) * millisecondsPerDay
	service.now = fixedClock(now)

	sessionRepo.sessions["recent"] = &secondary.SessionRecord{
		SessionID: "recent", Project: "demo", StartedAt: now - 2*millisecondsPerDay, Status: "completed",
	}
	sessionRepo.sessions["stale"] = &secondary.SessionRecord{
		SessionID: "stale", Project: "demo", StartedAt: now - 9*millisecondsPerDay, Status: "completed",
	}

	sessions, err := service.GetRecentSessions(context.Background(), "demo", 0, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "recent", sessions[0].SessionID)
}

func TestGetSessionSteps_Ordered(t *testing.T) {
	service, _, stepRepo, _, _ := newTestQueryService()

	stepRepo.steps = []*secondary.StepRecord{
		{SessionID: "s1", StepNumber: 2, Action: "second"},
		{SessionID: "s1", StepNumber: 1, Action: "first"},
		{SessionID: "other", StepNumber: 1, Action: "elsewhere"},
	}

	steps, err := service.GetSessionSteps(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "first", steps[0].Action)
	assert.Equal(t, "second", steps[1].Action)
}

func TestGetSessionSteps_MissingID(t *testing.T) {
	service, _, _, _, _ := newTestQueryService()

	_, err := service.GetSessionSteps(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetRecentFileChanges_Empty(t *testing.T) {
	service, _, _, _, _ := newTestQueryService()

	changes, err := service.GetRecentFileChanges(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestGetFeatureDecisions_OldestFirst(t *testing.T) {
	service, _, _, _, decisionRepo := newTestQueryService()

	decisionRepo.decisions = []*secondary.DecisionRecord{
		{SessionID: "s1", FeatureName: "auth", Timestamp: 200, Question: "later"},
		{SessionID: "s1", FeatureName: "auth", Timestamp: 100, Question: "earlier"},
	}

	decisions, err := service.GetFeatureDecisions(context.Background(), "auth")
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, "earlier", decisions[0].Question)
	assert.Equal(t, "later", decisions[1].Question)
}

func TestSearchSteps_EmptyQuery(t *testing.T) {
	service, _, _, _, _ := newTestQueryService()

	_, err := service.SearchSteps(context.Background(), "", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchSteps_Matches(t *testing.T) {
	service, _, stepRepo, _, _ := newTestQueryService()

	stepRepo.steps = []*secondary.StepRecord{
		{SessionID: "s1", Action: "refactor token parser"},
		{SessionID: "s1", Action: "update docs"},
	}

	steps, err := service.SearchSteps(context.Background(), "token", 0)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "refactor token parser", steps[0].Action)
}

func TestSearchDecisions_Matches(t *testing.T) {
	service, _, _, _, decisionRepo := newTestQueryService()

	decisionRepo.decisions = []*secondary.DecisionRecord{
		{SessionID: "s1", Question: "Which cache?", Choice: "redis", Timestamp: 100},
	}

	decisions, err := service.SearchDecisions(context.Background(), "cache", 0)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "redis", decisions[0].Choice)
}
