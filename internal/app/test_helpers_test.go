package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/example/journey/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure the mocks implement the secondary interfaces
var (
	_ secondary.SessionRepository    = (*mockSessionRepository)(nil)
	_ secondary.StepRepository       = (*mockStepRepository)(nil)
	_ secondary.FeatureRepository    = (*mockFeatureRepository)(nil)
	_ secondary.FileChangeRepository = (*mockFileChangeRepository)(nil)
	_ secondary.DecisionRepository   = (*mockDecisionRepository)(nil)
)

// mockSessionRepository implements secondary.SessionRepository for testing.
type mockSessionRepository struct {
	sessions    map[string]*secondary.SessionRecord
	statsResult *secondary.SessionStats
	createErr   error
	endErr      error
	existsErr   error
	listErr     error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{
		sessions:    make(map[string]*secondary.SessionRecord),
		statsResult: &secondary.SessionStats{},
	}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *secondary.SessionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*secondary.SessionRecord, error) {
	if session, ok := m.sessions[sessionID]; ok {
		return session, nil
	}
	return nil, fmt.Errorf("session %s: %w", sessionID, secondary.ErrNotFound)
}

func (m *mockSessionRepository) End(ctx context.Context, sessionID, summary, status string, endedAt int64) error {
	if m.endErr != nil {
		return m.endErr
	}
	session, ok := m.sessions[sessionID]
	if !ok || session.Status != "active" {
		return fmt.Errorf("active session %s: %w", sessionID, secondary.ErrNotFound)
	}
	session.Status = status
	session.Summary = summary
	session.EndedAt = &endedAt
	return nil
}

func (m *mockSessionRepository) GetActive(ctx context.Context, project string) (*secondary.SessionRecord, error) {
	var latest *secondary.SessionRecord
	for _, s := range m.sessions {
		if s.Status != "active" {
			continue
		}
		if project != "" && s.Project != project {
			continue
		}
		if latest == nil || s.StartedAt > latest.StartedAt {
			latest = s
		}
	}
	return latest, nil
}

func (m *mockSessionRepository) GetMostRecent(ctx context.Context, project string) (*secondary.SessionRecord, error) {
	var latest *secondary.SessionRecord
	for _, s := range m.sessions {
		if project != "" && s.Project != project {
			continue
		}
		if latest == nil || s.StartedAt > latest.StartedAt {
			latest = s
		}
	}
	return latest, nil
}

func (m *mockSessionRepository) ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*secondary.SessionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.SessionRecord
	for _, s := range m.sessions {
		if project != "" && s.Project != project {
			continue
		}
		if cutoff > 0 && s.StartedAt <= cutoff {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt > result[j].StartedAt
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockSessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.sessions[sessionID]
	return ok, nil
}

func (m *mockSessionRepository) Stats(ctx context.Context, project string, cutoff int64) (*secondary.SessionStats, error) {
	return m.statsResult, nil
}

// mockStepRepository implements secondary.StepRepository for testing.
type mockStepRepository struct {
	steps       []*secondary.StepRecord
	spawnCounts map[string]int
	createErr   error
	nextID      int64
}

func newMockStepRepository() *mockStepRepository {
	return &mockStepRepository{spawnCounts: make(map[string]int)}
}

func (m *mockStepRepository) Create(ctx context.Context, step *secondary.StepRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	step.ID = m.nextID
	number := 1
	for _, s := range m.steps {
		if s.SessionID == step.SessionID {
			number++
		}
	}
	step.StepNumber = number
	m.steps = append(m.steps, step)
	return step.ID, nil
}

func (m *mockStepRepository) ListBySession(ctx context.Context, sessionID string) ([]*secondary.StepRecord, error) {
	var result []*secondary.StepRecord
	for _, s := range m.steps {
		if s.SessionID == sessionID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StepNumber < result[j].StepNumber
	})
	return result, nil
}

func (m *mockStepRepository) ListRecent(ctx context.Context, sessionID string, limit int) ([]*secondary.StepRecord, error) {
	result, _ := m.ListBySession(ctx, sessionID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockStepRepository) Search(ctx context.Context, query string, limit int) ([]*secondary.StepRecord, error) {
	var result []*secondary.StepRecord
	for _, s := range m.steps {
		text := strings.Join([]string{s.Action, s.Target, s.Result, s.Context}, " ")
		if strings.Contains(text, query) {
			result = append(result, s)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockStepRepository) AgentSpawnCounts(ctx context.Context, project string, cutoff int64) (map[string]int, error) {
	return m.spawnCounts, nil
}

// mockFeatureRepository implements secondary.FeatureRepository for testing.
type mockFeatureRepository struct {
	features    map[string]*secondary.FeatureRecord
	statsResult *secondary.FeatureStats
	upsertErr   error
	getErr      error
	nextID      int64
}

func newMockFeatureRepository() *mockFeatureRepository {
	return &mockFeatureRepository{
		features:    make(map[string]*secondary.FeatureRecord),
		statsResult: &secondary.FeatureStats{},
	}
}

func (m *mockFeatureRepository) Upsert(ctx context.Context, params secondary.UpsertFeatureParams) (int64, error) {
	if m.upsertErr != nil {
		return 0, m.upsertErr
	}
	feature, ok := m.features[params.FeatureName]
	if !ok {
		m.nextID++
		feature = &secondary.FeatureRecord{
			ID:          m.nextID,
			FeatureName: params.FeatureName,
			Project:     params.Project,
			CreatedAt:   params.Now,
			UpdatedAt:   params.Now,
			Status:      "in_progress",
		}
		if params.CurrentStage != nil {
			feature.CurrentStage = *params.CurrentStage
		}
		if params.Status != "" {
			feature.Status = params.Status
		}
		if params.Description != "" {
			feature.Description = params.Description
		}
		m.features[params.FeatureName] = feature
		return feature.ID, nil
	}
	feature.UpdatedAt = params.Now
	if params.CurrentStage != nil {
		feature.CurrentStage = *params.CurrentStage
		stamp := params.Now
		feature.StageCompleted[*params.CurrentStage] = &stamp
	}
	if params.Status != "" {
		feature.Status = params.Status
	}
	if params.Description != "" {
		feature.Description = params.Description
	}
	return feature.ID, nil
}

func (m *mockFeatureRepository) GetByName(ctx context.Context, featureName string) (*secondary.FeatureRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.features[featureName], nil
}

func (m *mockFeatureRepository) MarkStageComplete(ctx context.Context, featureName string, stage int, now int64) error {
	feature, ok := m.features[featureName]
	if !ok {
		return fmt.Errorf("feature %s: %w", featureName, secondary.ErrNotFound)
	}
	feature.CurrentStage = stage
	stamp := now
	feature.StageCompleted[stage] = &stamp
	feature.UpdatedAt = now
	return nil
}

func (m *mockFeatureRepository) Stats(ctx context.Context, project string, cutoff int64) (*secondary.FeatureStats, error) {
	return m.statsResult, nil
}

// mockFileChangeRepository implements secondary.FileChangeRepository for
// testing.
type mockFileChangeRepository struct {
	changes   []*secondary.FileChangeRecord
	counts    map[string]int
	createErr error
	nextID    int64
}

func newMockFileChangeRepository() *mockFileChangeRepository {
	return &mockFileChangeRepository{counts: make(map[string]int)}
}

func (m *mockFileChangeRepository) Create(ctx context.Context, change *secondary.FileChangeRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	change.ID = m.nextID
	m.changes = append(m.changes, change)
	return change.ID, nil
}

func (m *mockFileChangeRepository) ListRecent(ctx context.Context, cutoff int64, limit int) ([]*secondary.FileChangeRecord, error) {
	var result []*secondary.FileChangeRecord
	for _, c := range m.changes {
		if cutoff > 0 && c.Timestamp <= cutoff {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockFileChangeRepository) CountsByType(ctx context.Context, project string, cutoff int64) (map[string]int, error) {
	return m.counts, nil
}

// mockDecisionRepository implements secondary.DecisionRepository for testing.
type mockDecisionRepository struct {
	decisions []*secondary.DecisionRecord
	createErr error
	nextID    int64
}

func newMockDecisionRepository() *mockDecisionRepository {
	return &mockDecisionRepository{}
}

func (m *mockDecisionRepository) Create(ctx context.Context, decision *secondary.DecisionRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	decision.ID = m.nextID
	m.decisions = append(m.decisions, decision)
	return decision.ID, nil
}

func (m *mockDecisionRepository) GetMostRecent(ctx context.Context, sessionID string) (*secondary.DecisionRecord, error) {
	var latest *secondary.DecisionRecord
	for _, d := range m.decisions {
		if d.SessionID != sessionID {
			continue
		}
		if latest == nil || d.Timestamp > latest.Timestamp {
			latest = d
		}
	}
	return latest, nil
}

func (m *mockDecisionRepository) ListByFeature(ctx context.Context, featureName string) ([]*secondary.DecisionRecord, error) {
	var result []*secondary.DecisionRecord
	for _, d := range m.decisions {
		if d.FeatureName == featureName {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})
	return result, nil
}

func (m *mockDecisionRepository) ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*secondary.DecisionRecord, error) {
	var result []*secondary.DecisionRecord
	for _, d := range m.decisions {
		if cutoff > 0 && d.Timestamp <= cutoff {
			continue
		}
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockDecisionRepository) Search(ctx context.Context, query string, limit int) ([]*secondary.DecisionRecord, error) {
	var result []*secondary.DecisionRecord
	for _, d := range m.decisions {
		text := strings.Join([]string{d.Question, d.Choice, d.Rationale}, " ")
		if strings.Contains(text, query) {
			result = append(result, d)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// fixedClock pins a service clock for deterministic timestamps.
func fixedClock(ts int64) func() int64 {
	return func() int64 { return ts }
}

func intPtr(v int) *int { return &v }
