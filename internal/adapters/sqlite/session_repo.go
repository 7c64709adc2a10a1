// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/journey/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionRepository with SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = "session_id, project, feature_name, initial_request, started_at, ended_at, status, summary, total_steps, total_agents_spawned"

// Create persists a new session.
func (r *SessionRepository) Create(ctx context.Context, session *secondary.SessionRecord) error {
	status := session.Status
	if status == "" {
		status = "active"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (session_id, project, feature_name, initial_request, started_at, status) VALUES (?, ?, ?, ?, ?, ?)",
		session.SessionID, session.Project, nullString(session.FeatureName), nullString(session.InitialRequest), session.StartedAt, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*secondary.SessionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE session_id = ?",
		sessionID,
	)

	record, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s: %w", sessionID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return record, nil
}

// End snapshots step and agent-spawn counts as of the call and closes the
// session in one transaction. The status guard makes the update a no-match
// on unknown or already-ended sessions, so the snapshot is written once.
func (r *SessionRepository) End(ctx context.Context, sessionID, summary, status string, endedAt int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var totalSteps, agents int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(CASE WHEN step_type = 'agent_spawn' THEN 1 END) FROM steps WHERE session_id = ?",
		sessionID,
	).Scan(&totalSteps, &agents)
	if err != nil {
		return fmt.Errorf("failed to count steps: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE sessions SET ended_at = ?, status = ?, summary = ?, total_steps = ?, total_agents_spawned = ? WHERE session_id = ? AND status = 'active'",
		endedAt, status, nullString(summary), totalSteps, agents, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("active session %s: %w", sessionID, secondary.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session end: %w", err)
	}

	return nil
}

// GetActive returns the most recently started active session, or nil.
func (r *SessionRepository) GetActive(ctx context.Context, project string) (*secondary.SessionRecord, error) {
	query := "SELECT " + sessionColumns + " FROM sessions WHERE status = 'active'"
	args := []any{}

	if project != "" {
		query += " AND project = ?"
		args = append(args, project)
	}

	query += " ORDER BY started_at DESC LIMIT 1"

	record, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	return record, nil
}

// GetMostRecent returns the most recently started session regardless of
// status, or nil.
func (r *SessionRepository) GetMostRecent(ctx context.Context, project string) (*secondary.SessionRecord, error) {
	query := "SELECT " + sessionColumns + " FROM sessions"
	args := []any{}

	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}

	query += " ORDER BY started_at DESC LIMIT 1"

	record, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent session: %w", err)
	}

	return record, nil
}

// ListRecent returns sessions started after cutoff, newest first.
func (r *SessionRepository) ListRecent(ctx context.Context, project string, cutoff int64, limit int) ([]*secondary.SessionRecord, error) {
	query := "SELECT " + sessionColumns + " FROM sessions WHERE started_at > ?"
	args := []any{cutoff}

	if project != "" {
		query += " AND project = ?"
		args = append(args, project)
	}

	query += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*secondary.SessionRecord
	for rows.Next() {
		record, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, record)
	}

	return sessions, rows.Err()
}

// Exists reports whether a session with the given ID exists.
func (r *SessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}
	return count > 0, nil
}

// Stats aggregates session counts for sessions started after cutoff.
func (r *SessionRepository) Stats(ctx context.Context, project string, cutoff int64) (*secondary.SessionStats, error) {
	query := `SELECT
		COUNT(*),
		COUNT(CASE WHEN status = 'completed' THEN 1 END),
		COALESCE(SUM(total_steps), 0),
		COALESCE(SUM(total_agents_spawned), 0)
	FROM sessions WHERE started_at > ?`
	args := []any{cutoff}

	if project != "" {
		query += " AND project = ?"
		args = append(args, project)
	}

	stats := &secondary.SessionStats{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSessions, &stats.CompletedSessions, &stats.TotalSteps, &stats.TotalAgentsSpawned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session stats: %w", err)
	}

	return stats, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*secondary.SessionRecord, error) {
	var (
		featureName    sql.NullString
		initialRequest sql.NullString
		endedAt        sql.NullInt64
		summary        sql.NullString
	)

	record := &secondary.SessionRecord{}
	err := row.Scan(
		&record.SessionID, &record.Project, &featureName, &initialRequest,
		&record.StartedAt, &endedAt, &record.Status, &summary,
		&record.TotalSteps, &record.TotalAgentsSpawned,
	)
	if err != nil {
		return nil, err
	}

	record.FeatureName = featureName.String
	record.InitialRequest = initialRequest.String
	record.Summary = summary.String
	if endedAt.Valid {
		record.EndedAt = &endedAt.Int64
	}

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// Ensure SessionRepository implements the interface
var _ secondary.SessionRepository = (*SessionRepository)(nil)
