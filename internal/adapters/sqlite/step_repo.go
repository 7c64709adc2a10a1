package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/journey/internal/ports/secondary"
)

// StepRepository implements secondary.StepRepository with SQLite.
type StepRepository struct {
	db *sql.DB
}

// NewStepRepository creates a new SQLite step repository.
func NewStepRepository(db *sql.DB) *StepRepository {
	return &StepRepository{db: db}
}

const stepColumns = "id, session_id, step_number, step_type, timestamp, agent_name, agent_model, pipeline_stage, action, target, result, files_created, files_modified, files_deleted, context"

// Create assigns the next step_number and inserts the step in one
// immediate transaction (the connection opens with _txlock=immediate, so
// a racing writer queues on the busy timeout rather than failing). The
// UNIQUE(session_id, step_number) constraint backs up the serialization.
func (r *StepRepository) Create(ctx context.Context, step *secondary.StepRecord) (int64, error) {
	filesCreated, err := marshalPathList(step.FilesCreated)
	if err != nil {
		return 0, fmt.Errorf("failed to encode files_created: %w", err)
	}
	filesModified, err := marshalPathList(step.FilesModified)
	if err != nil {
		return 0, fmt.Errorf("failed to encode files_modified: %w", err)
	}
	filesDeleted, err := marshalPathList(step.FilesDeleted)
	if err != nil {
		return 0, fmt.Errorf("failed to encode files_deleted: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var stepNumber int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(step_number), 0) + 1 FROM steps WHERE session_id = ?",
		step.SessionID,
	).Scan(&stepNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to assign step number: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO steps (
			session_id, step_number, step_type, timestamp,
			agent_name, agent_model, pipeline_stage,
			action, target, result,
			files_created, files_modified, files_deleted, context
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		step.SessionID, stepNumber, step.StepType, step.Timestamp,
		nullString(step.AgentName), nullString(step.AgentModel), nullInt(step.PipelineStage),
		step.Action, nullString(step.Target), nullString(step.Result),
		filesCreated, filesModified, filesDeleted, nullString(step.Context),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create step: %w", err)
	}

	stepID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get step id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit step: %w", err)
	}

	step.ID = stepID
	step.StepNumber = stepNumber
	return stepID, nil
}

// ListBySession returns all steps of a session ordered by step_number.
func (r *StepRepository) ListBySession(ctx context.Context, sessionID string) ([]*secondary.StepRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+stepColumns+" FROM steps WHERE session_id = ? ORDER BY step_number ASC",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer rows.Close()

	return collectSteps(rows)
}

// ListRecent returns the most recent steps of a session, newest first.
func (r *StepRepository) ListRecent(ctx context.Context, sessionID string, limit int) ([]*secondary.StepRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+stepColumns+" FROM steps WHERE session_id = ? ORDER BY step_number DESC LIMIT ?",
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent steps: %w", err)
	}
	defer rows.Close()

	return collectSteps(rows)
}

// Search runs a full-text match against the steps index, newest first.
func (r *StepRepository) Search(ctx context.Context, query string, limit int) ([]*secondary.StepRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stepColumns+` FROM steps
		WHERE id IN (SELECT rowid FROM steps_fts WHERE steps_fts MATCH ?)
		ORDER BY timestamp DESC LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search steps: %w", err)
	}
	defer rows.Close()

	return collectSteps(rows)
}

// AgentSpawnCounts counts agent_spawn steps after cutoff grouped by agent.
func (r *StepRepository) AgentSpawnCounts(ctx context.Context, project string, cutoff int64) (map[string]int, error) {
	query := `SELECT s.agent_name, COUNT(*)
		FROM steps s
		JOIN sessions sess ON s.session_id = sess.session_id
		WHERE s.step_type = 'agent_spawn' AND s.agent_name IS NOT NULL AND s.timestamp > ?`
	args := []any{cutoff}

	if project != "" {
		query += " AND sess.project = ?"
		args = append(args, project)
	}

	query += " GROUP BY s.agent_name ORDER BY COUNT(*) DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count agent spawns: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var agent string
		var count int
		if err := rows.Scan(&agent, &count); err != nil {
			return nil, fmt.Errorf("failed to scan agent count: %w", err)
		}
		counts[agent] = count
	}

	return counts, rows.Err()
}

func collectSteps(rows *sql.Rows) ([]*secondary.StepRecord, error) {
	var steps []*secondary.StepRecord
	for rows.Next() {
		record, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, record)
	}
	return steps, rows.Err()
}

func scanStep(row scanner) (*secondary.StepRecord, error) {
	var (
		agentName     sql.NullString
		agentModel    sql.NullString
		pipelineStage sql.NullInt64
		target        sql.NullString
		result        sql.NullString
		filesCreated  sql.NullString
		filesModified sql.NullString
		filesDeleted  sql.NullString
		stepContext   sql.NullString
	)

	record := &secondary.StepRecord{}
	err := row.Scan(
		&record.ID, &record.SessionID, &record.StepNumber, &record.StepType, &record.Timestamp,
		&agentName, &agentModel, &pipelineStage,
		&record.Action, &target, &result,
		&filesCreated, &filesModified, &filesDeleted, &stepContext,
	)
	if err != nil {
		return nil, err
	}

	record.AgentName = agentName.String
	record.AgentModel = agentModel.String
	if pipelineStage.Valid {
		stage := int(pipelineStage.Int64)
		record.PipelineStage = &stage
	}
	record.Target = target.String
	record.Result = result.String
	record.Context = stepContext.String

	if record.FilesCreated, err = unmarshalPathList(filesCreated); err != nil {
		return nil, fmt.Errorf("failed to decode files_created: %w", err)
	}
	if record.FilesModified, err = unmarshalPathList(filesModified); err != nil {
		return nil, fmt.Errorf("failed to decode files_modified: %w", err)
	}
	if record.FilesDeleted, err = unmarshalPathList(filesDeleted); err != nil {
		return nil, fmt.Errorf("failed to decode files_deleted: %w", err)
	}

	return record, nil
}

// marshalPathList serializes a path list as a JSON array, preserving order
// and duplicates. Empty lists are stored as NULL.
func marshalPathList(paths []string) (sql.NullString, error) {
	if len(paths) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(paths)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalPathList(column sql.NullString) ([]string, error) {
	if !column.Valid || column.String == "" {
		return nil, nil
	}
	var paths []string
	if err := json.Unmarshal([]byte(column.String), &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// Ensure StepRepository implements the interface
var _ secondary.StepRepository = (*StepRepository)(nil)
