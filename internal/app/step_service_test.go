package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/journey/internal/ports/primary"
	"github.com/example/journey/internal/ports/secondary"
)

func newTestStepService() (*StepServiceImpl, *mockStepRepository, *mockSessionRepository) {
	stepRepo := newMockStepRepository()
	sessionRepo := newMockSessionRepository()
	sessionRepo.sessions["s1"] = &secondary.SessionRecord{SessionID: "s1", Project: "demo", Status: "active"}
	return NewStepService(stepRepo, sessionRepo), stepRepo, sessionRepo
}

func TestRecordStep_Success(t *testing.T) {
	service, stepRepo, _ := newTestStepService()
	service.now = fixedClock(5000)

	resp, err := service.RecordStep(context.Background(), primary.RecordStepRequest{
		SessionID:     "s1",
		StepType:      "agent_spawn",
		Action:        "spawn research agent",
		AgentName:     "metis",
		PipelineStage: intPtr(0),
		FilesCreated:  []string{"notes.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.StepID)

	require.Len(t, stepRepo.steps, 1)
	stored := stepRepo.steps[0]
	assert.Equal(t, 1, stored.StepNumber)
	assert.Equal(t, int64(5000), stored.Timestamp)
	assert.Equal(t, []string{"notes.md"}, stored.FilesCreated)
}

func TestRecordStep_NumbersPerSession(t *testing.T) {
	service, stepRepo, sessionRepo := newTestStepService()
	sessionRepo.sessions["s2"] = &secondary.SessionRecord{SessionID: "s2", Status: "active"}

	for _, sessionID := range []string{"s1", "s1", "s2"} {
		_, err := service.RecordStep(context.Background(), primary.RecordStepRequest{
			SessionID: sessionID,
			StepType:  "tool_use",
			Action:    "edit",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, stepRepo.steps[0].StepNumber)
	assert.Equal(t, 2, stepRepo.steps[1].StepNumber)
	assert.Equal(t, 1, stepRepo.steps[2].StepNumber)
}

func TestRecordStep_UnknownSession(t *testing.T) {
	service, _, _ := newTestStepService()

	_, err := service.RecordStep(context.Background(), primary.RecordStepRequest{
		SessionID: "ghost",
		StepType:  "tool_use",
		Action:    "edit",
	})
	assert.ErrorIs(t, err, secondary.ErrNotFound)
}

func TestRecordStep_Validation(t *testing.T) {
	service, _, _ := newTestStepService()

	cases := []struct {
		name string
		req  primary.RecordStepRequest
	}{
		{"missing session", primary.RecordStepRequest{StepType: "tool_use", Action: "edit"}},
		{"missing type", primary.RecordStepRequest{SessionID: "s1", Action: "edit"}},
		{"missing action", primary.RecordStepRequest{SessionID: "s1", StepType: "tool_use"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.RecordStep(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
