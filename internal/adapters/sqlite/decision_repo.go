package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/journey/internal/ports/secondary"
)

// DecisionRepository implements secondary.DecisionRepository with SQLite.
type DecisionRepository struct {
	db *sql.DB
}

// NewDecisionRepository creates a new SQLite decision repository.
func NewDecisionRepository(db *sql.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

const decisionColumns = "id, session_id, step_id, feature_name, timestamp, decision_type, question, choice, alternatives, rationale, impact"

// Create inserts a decision and returns its row ID.
func (r *DecisionRepository) Create(ctx context.Context, decision *secondary.DecisionRecord) (int64, error) {
	decisionType := decision.DecisionType
	if decisionType == "" {
		decisionType = "implementation"
	}

	var alternatives sql.NullString
	if len(decision.Alternatives) > 0 {
		data, err := json.Marshal(decision.Alternatives)
		if err != nil {
			return 0, fmt.Errorf("failed to encode alternatives: %w", err)
		}
		alternatives = sql.NullString{String: string(data), Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO decisions (
			session_id, step_id, feature_name, timestamp,
			decision_type, question, choice, alternatives, rationale, impact
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		decision.SessionID, nullInt64(decision.StepID), nullString(decision.FeatureName), decision.Timestamp,
		decisionType, decision.Question, decision.Choice, alternatives,
		nullString(decision.Rationale), nullString(decision.Impact),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create decision: %w", err)
	}

	decisionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get decision id: %w", err)
	}

	decision.ID = decisionID
	decision.DecisionType = decisionType
	return decisionID, nil
}

// GetMostRecent returns the latest decision of a session, or nil.
func (r *DecisionRepository) GetMostRecent(ctx context.Context, sessionID string) (*secondary.DecisionRecord, error) {
	record, err := scanDecision(r.db.QueryRowContext(ctx,
		"SELECT "+decisionColumns+" FROM decisions WHERE session_id = ? ORDER BY timestamp DESC, id DESC LIMIT 1",
		sessionID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last decision: %w", err)
	}

	return record, nil
}

// ListByFeature returns all decisions for a feature, oldest first.
func (r *DecisionRepository) ListByFeature(ctx context.Context, featureName string) ([]*secondary.DecisionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+decisionColumns+" FROM decisions WHERE feature_name = ? ORDER BY timestamp ASC",
		featureName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature decisions: %w", err)
	}
	defer rows.Close()

	return collectDecisions(rows)
}

// ListRecent returns decisions after cutoff, newest first.
func (r *DecisionRepository) ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*secondary.DecisionRecord, error) {
	query := `SELECT ` + decisionColumnsQualified + `
		FROM decisions d
		JOIN sessions sess ON d.session_id = sess.session_id
		WHERE d.timestamp > ?`
	args := []any{cutoff}

	if project != "" {
		query += " AND sess.project = ?"
		args = append(args, project)
	}

	query += " ORDER BY d.timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent decisions: %w", err)
	}
	defer rows.Close()

	return collectDecisions(rows)
}

// Search runs a full-text match against the decisions index, newest first.
func (r *DecisionRepository) Search(ctx context.Context, query string, limit int) ([]*secondary.DecisionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+decisionColumns+` FROM decisions
		WHERE id IN (SELECT rowid FROM decisions_fts WHERE decisions_fts MATCH ?)
		ORDER BY timestamp DESC LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search decisions: %w", err)
	}
	defer rows.Close()

	return collectDecisions(rows)
}

const decisionColumnsQualified = "d.id, d.session_id, d.step_id, d.feature_name, d.timestamp, d.decision_type, d.question, d.choice, d.alternatives, d.rationale, d.impact"

func collectDecisions(rows *sql.Rows) ([]*secondary.DecisionRecord, error) {
	var decisions []*secondary.DecisionRecord
	for rows.Next() {
		record, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		decisions = append(decisions, record)
	}
	return decisions, rows.Err()
}

func scanDecision(row scanner) (*secondary.DecisionRecord, error) {
	var (
		stepID       sql.NullInt64
		featureName  sql.NullString
		alternatives sql.NullString
		rationale    sql.NullString
		impact       sql.NullString
	)

	record := &secondary.DecisionRecord{}
	err := row.Scan(
		&record.ID, &record.SessionID, &stepID, &featureName, &record.Timestamp,
		&record.DecisionType, &record.Question, &record.Choice,
		&alternatives, &rationale, &impact,
	)
	if err != nil {
		return nil, err
	}

	if stepID.Valid {
		record.StepID = &stepID.Int64
	}
	record.FeatureName = featureName.String
	record.Rationale = rationale.String
	record.Impact = impact.String

	if alternatives.Valid && alternatives.String != "" {
		if err := json.Unmarshal([]byte(alternatives.String), &record.Alternatives); err != nil {
			return nil, fmt.Errorf("failed to decode alternatives: %w", err)
		}
	}

	return record, nil
}

// Ensure DecisionRepository implements the interface
var _ secondary.DecisionRepository = (*DecisionRepository)(nil)
