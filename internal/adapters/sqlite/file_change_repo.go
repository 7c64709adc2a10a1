package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/journey/internal/ports/secondary"
)

// FileChangeRepository implements secondary.FileChangeRepository with SQLite.
type FileChangeRepository struct {
	db *sql.DB
}

// NewFileChangeRepository creates a new SQLite file-change repository.
func NewFileChangeRepository(db *sql.DB) *FileChangeRepository {
	return &FileChangeRepository{db: db}
}

const fileChangeColumns = "id, session_id, step_id, timestamp, file_path, change_type, old_path, description, lines_added, lines_removed"

// Create inserts a file change and returns its row ID.
func (r *FileChangeRepository) Create(ctx context.Context, change *secondary.FileChangeRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO file_changes (
			session_id, step_id, timestamp, file_path, change_type,
			old_path, description, lines_added, lines_removed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		change.SessionID, nullInt64(change.StepID), change.Timestamp, change.FilePath, change.ChangeType,
		nullString(change.OldPath), nullString(change.Description), nullInt(change.LinesAdded), nullInt(change.LinesRemoved),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create file change: %w", err)
	}

	changeID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get file change id: %w", err)
	}

	change.ID = changeID
	return changeID, nil
}

// ListRecent returns file changes after cutoff, newest first.
func (r *FileChangeRepository) ListRecent(ctx context.Context, cutoff int64, limit int) ([]*secondary.FileChangeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+fileChangeColumns+" FROM file_changes WHERE timestamp > ? ORDER BY timestamp DESC LIMIT ?",
		cutoff, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list file changes: %w", err)
	}
	defer rows.Close()

	var changes []*secondary.FileChangeRecord
	for rows.Next() {
		record, err := scanFileChange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file change: %w", err)
		}
		changes = append(changes, record)
	}

	return changes, rows.Err()
}

// CountsByType counts file changes after cutoff grouped by change type.
func (r *FileChangeRepository) CountsByType(ctx context.Context, project string, cutoff int64) (map[string]int, error) {
	query := `SELECT fc.change_type, COUNT(*)
		FROM file_changes fc
		JOIN sessions sess ON fc.session_id = sess.session_id
		WHERE fc.timestamp > ?`
	args := []any{cutoff}

	if project != "" {
		query += " AND sess.project = ?"
		args = append(args, project)
	}

	query += " GROUP BY fc.change_type"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count file changes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var changeType string
		var count int
		if err := rows.Scan(&changeType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan change count: %w", err)
		}
		counts[changeType] = count
	}

	return counts, rows.Err()
}

func scanFileChange(row scanner) (*secondary.FileChangeRecord, error) {
	var (
		stepID       sql.NullInt64
		oldPath      sql.NullString
		description  sql.NullString
		linesAdded   sql.NullInt64
		linesRemoved sql.NullInt64
	)

	record := &secondary.FileChangeRecord{}
	err := row.Scan(
		&record.ID, &record.SessionID, &stepID, &record.Timestamp,
		&record.FilePath, &record.ChangeType, &oldPath, &description,
		&linesAdded, &linesRemoved,
	)
	if err != nil {
		return nil, err
	}

	if stepID.Valid {
		record.StepID = &stepID.Int64
	}
	record.OldPath = oldPath.String
	record.Description = description.String
	if linesAdded.Valid {
		added := int(linesAdded.Int64)
		record.LinesAdded = &added
	}
	if linesRemoved.Valid {
		removed := int(linesRemoved.Int64)
		record.LinesRemoved = &removed
	}

	return record, nil
}

// Ensure FileChangeRepository implements the interface
var _ secondary.FileChangeRepository = (*FileChangeRepository)(nil)
