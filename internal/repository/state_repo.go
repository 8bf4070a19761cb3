package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"baking_oven/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

var _ StateRepo = (*StateSQLite)(nil)

const (
	ovenStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO oven_state (id, status, run_id, program_id, fan_on, stage_count, current_stage, heat, target_c, stage_min, last_error, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status=excluded.status,
			run_id=excluded.run_id,
			program_id=excluded.program_id,
			fan_on=excluded.fan_on,
			stage_count=excluded.stage_count,
			current_stage=excluded.current_stage,
			heat=excluded.heat,
			target_c=excluded.target_c,
			stage_min=excluded.stage_min,
			last_error=excluded.last_error,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, status, run_id, program_id, fan_on, stage_count, current_stage, heat, target_c, stage_min, last_error, updated_at
		FROM oven_state WHERE id=?
	`
)

// Save upserts the single oven_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.OvenState) error {
	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		ovenStateRowID,
		state.Status,
		state.RunID,
		state.ProgramID,
		state.FanOn,
		state.StageCount,
		state.CurrentStage,
		state.Heat,
		state.TargetTempC,
		state.StageMinutes,
		state.LastError,
		tsUTC,
	)
	return err
}

// Load fetches the oven_state row. A zero OvenState (ID 0) means nothing was saved yet.
func (r *StateSQLite) Load(ctx context.Context) (models.OvenState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, ovenStateRowID)

	var s models.OvenState
	if err := row.Scan(
		&s.ID,
		&s.Status,
		&s.RunID,
		&s.ProgramID,
		&s.FanOn,
		&s.StageCount,
		&s.CurrentStage,
		&s.Heat,
		&s.TargetTempC,
		&s.StageMinutes,
		&s.LastError,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OvenState{}, nil
		}
		return models.OvenState{}, err
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
