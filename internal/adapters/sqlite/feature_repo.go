package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/journey/internal/ports/secondary"
)

// FeatureRepository implements secondary.FeatureRepository with SQLite.
type FeatureRepository struct {
	db *sql.DB
}

// NewFeatureRepository creates a new SQLite feature repository.
func NewFeatureRepository(db *sql.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

const featureColumns = `id, feature_name, project, created_at, updated_at, current_stage, status, description,
	stage_0_completed, stage_1_completed, stage_2_completed, stage_3_completed, stage_4_completed,
	stage_5_completed, stage_6_completed, stage_7_completed, stage_8_completed`

// stageCompletedColumns is the fixed enumeration of stage-completion
// columns, indexed by stage number. Column names are never built from
// input; the stage value only selects from this list.
var stageCompletedColumns = [9]string{
	"stage_0_completed",
	"stage_1_completed",
	"stage_2_completed",
	"stage_3_completed",
	"stage_4_completed",
	"stage_5_completed",
	"stage_6_completed",
	"stage_7_completed",
	"stage_8_completed",
}

// Upsert creates the feature if absent or applies only the supplied fields
// if present, in one transaction keyed by the unique feature name.
func (r *FeatureRepository) Upsert(ctx context.Context, params secondary.UpsertFeatureParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var featureID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM features WHERE feature_name = ?", params.FeatureName,
	).Scan(&featureID)

	switch {
	case err == sql.ErrNoRows:
		stage := 0
		if params.CurrentStage != nil {
			stage = *params.CurrentStage
		}
		status := params.Status
		if status == "" {
			status = "in_progress"
		}

		result, err := tx.ExecContext(ctx,
			"INSERT INTO features (feature_name, project, created_at, updated_at, current_stage, status, description) VALUES (?, ?, ?, ?, ?, ?, ?)",
			params.FeatureName, params.Project, params.Now, params.Now, stage, status, nullString(params.Description),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create feature: %w", err)
		}
		featureID, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get feature id: %w", err)
		}

	case err != nil:
		return 0, fmt.Errorf("failed to look up feature: %w", err)

	default:
		query := "UPDATE features SET updated_at = ?"
		args := []any{params.Now}

		if params.CurrentStage != nil {
			query += ", current_stage = ?, " + stageCompletedColumns[*params.CurrentStage] + " = ?"
			args = append(args, *params.CurrentStage, params.Now)
		}
		if params.Status != "" {
			query += ", status = ?"
			args = append(args, params.Status)
		}
		if params.Description != "" {
			query += ", description = ?"
			args = append(args, params.Description)
		}

		query += " WHERE feature_name = ?"
		args = append(args, params.FeatureName)

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to update feature: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit feature upsert: %w", err)
	}

	return featureID, nil
}

// GetByName retrieves a feature, or nil when absent.
func (r *FeatureRepository) GetByName(ctx context.Context, featureName string) (*secondary.FeatureRecord, error) {
	record, err := scanFeature(r.db.QueryRowContext(ctx,
		"SELECT "+featureColumns+" FROM features WHERE feature_name = ?",
		featureName,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	return record, nil
}

// MarkStageComplete sets current_stage and stamps the stage's completion
// timestamp. The stage must already be validated to 0..8.
func (r *FeatureRepository) MarkStageComplete(ctx context.Context, featureName string, stage int, now int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE features SET "+stageCompletedColumns[stage]+" = ?, current_stage = ?, updated_at = ? WHERE feature_name = ?",
		now, stage, now, featureName,
	)
	if err != nil {
		return fmt.Errorf("failed to mark stage complete: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("feature %s: %w", featureName, secondary.ErrNotFound)
	}

	return nil
}

// Stats aggregates feature counts for features created after cutoff.
func (r *FeatureRepository) Stats(ctx context.Context, project string, cutoff int64) (*secondary.FeatureStats, error) {
	query := `SELECT
		COUNT(*),
		COUNT(CASE WHEN status = 'completed' THEN 1 END),
		AVG(current_stage)
	FROM features WHERE created_at > ?`
	args := []any{cutoff}

	if project != "" {
		query += " AND project = ?"
		args = append(args, project)
	}

	stats := &secondary.FeatureStats{}
	var avgStage sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalFeatures, &stats.CompletedFeatures, &avgStage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feature stats: %w", err)
	}
	if avgStage.Valid {
		stats.AvgStage = &avgStage.Float64
	}

	return stats, nil
}

func scanFeature(row scanner) (*secondary.FeatureRecord, error) {
	var (
		description sql.NullString
		completed   [9]sql.NullInt64
	)

	record := &secondary.FeatureRecord{}
	err := row.Scan(
		&record.ID, &record.FeatureName, &record.Project, &record.CreatedAt, &record.UpdatedAt,
		&record.CurrentStage, &record.Status, &description,
		&completed[0], &completed[1], &completed[2], &completed[3], &completed[4],
		&completed[5], &completed[6], &completed[7], &completed[8],
	)
	if err != nil {
		return nil, err
	}

	record.Description = description.String
	for i, ts := range completed {
		if ts.Valid {
			value := ts.Int64
			record.StageCompleted[i] = &value
		}
	}

	return record, nil
}

// Ensure FeatureRepository implements the interface
var _ secondary.FeatureRepository = (*FeatureRepository)(nil)
