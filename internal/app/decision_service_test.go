package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

func newTestDecisionService() (*DecisionServiceImpl, *mockDecisionRepository) {
	decisionRepo := newMockDecisionRepository()
	sessionRepo := newMockSessionRepository()
	sessionRepo.sessions["s1"] = &secondary.SessionRecord{SessionID: "s1", Status: "active"}
	return NewDecisionService(decisionRepo, sessionRepo), decisionRepo
}

func TestRecordDecision_Success(t *testing.T) {
	service, decisionRepo := newTestDecisionService()
	service.now = fixedClock(6000)

	resp, err := service.RecordDecision(context.Background(), primary.RecordDecisionRequest{
		SessionID:    "s1",
		Question:     "Which store?",
		Choice:       "sqlite",
		Alternatives: []string{"postgres", "bolt"},
		Rationale:    "zero-ops local file",
		FeatureName:  "auth",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DecisionID)

	require.Len(t, decisionRepo.decisions, 1)
	stored := decisionRepo.decisions[0]
	assert.Equal(t, int64(6000), stored.Timestamp)
	assert.Equal(t, []string{"postgres", "bolt"}, stored.Alternatives)
}

func TestRecordDecision_UnknownSession(t *testing.T) {
	service, _ := newTestDecisionService()

	_, err := service.RecordDecision(context.Background(), primary.RecordDecisionRequest{
		SessionID: "ghost",
		Question:  "q",
		Choice:    "c",
	})
	assert.ErrorIs(t, err, secondary.ErrNotFound)
}

func TestRecordDecision_Validation(t *testing.T) {
	service, _ := newTestDecisionService()

	_, err := service.RecordDecision(context.Background(), primary.RecordDecisionRequest{
		SessionID: "s1",
		Choice:    "c",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.RecordDecision(context.Background(), primary.RecordDecisionRequest{
		SessionID: "s1",
		Question:  "q",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
