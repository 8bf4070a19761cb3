package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"baking_oven/internal/models"
	"baking_oven/internal/oven"

	"github.com/google/uuid"
)

type ProgramSQLite struct {
	db *sql.DB
}

func NewProgramSQLite(db *sql.DB) *ProgramSQLite { return &ProgramSQLite{db: db} }

var _ ProgramRepo = (*ProgramSQLite)(nil)

const (
	insertProgramSQL = `
		INSERT INTO programs (id, name, initial_temp, stages, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	selectProgramSQL = `SELECT id, name, initial_temp, stages, created_at FROM programs`
	deleteProgramSQL = `DELETE FROM programs WHERE id = ?`
)

// Create inserts p. Empty ID and zero CreatedAt are filled in; the stored row is returned.
func (r *ProgramSQLite) Create(ctx context.Context, p models.StoredProgram) (models.StoredProgram, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}
	p.Name = strings.TrimSpace(p.Name)

	stagesJSON, err := json.Marshal(p.Stages)
	if err != nil {
		return models.StoredProgram{}, fmt.Errorf("marshal stages of %q: %w", p.Name, err)
	}

	if _, err := r.db.ExecContext(ctx, insertProgramSQL,
		p.ID,
		p.Name,
		p.InitialTempC,
		string(stagesJSON),
		p.CreatedAt,
	); err != nil {
		return models.StoredProgram{}, fmt.Errorf("insert program %q: %w", p.Name, err)
	}
	return p, nil
}

// Get returns ErrNotFound when no program has the given id.
func (r *ProgramSQLite) Get(ctx context.Context, id string) (models.StoredProgram, error) {
	row := r.db.QueryRowContext(ctx, selectProgramSQL+" WHERE id = ?", id)
	p, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredProgram{}, ErrNotFound
		}
		return models.StoredProgram{}, err
	}
	return p, nil
}

// likeEscaper makes the name filter match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// List returns programs ordered by creation time. A non-empty nameFilter
// keeps programs whose name contains it, case-insensitively.
func (r *ProgramSQLite) List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error) {
	q := selectProgramSQL
	var args []any
	if f := strings.TrimSpace(nameFilter); f != "" {
		q += ` WHERE LOWER(name) LIKE ? ESCAPE '\'`
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(f))+"%")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.StoredProgram, 0, 16)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete returns ErrNotFound when nothing was deleted.
func (r *ProgramSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProgramSQL, id)
	if err != nil {
		return fmt.Errorf("delete program %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for program %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgram(s rowScanner) (models.StoredProgram, error) {
	var (
		p          models.StoredProgram
		stagesJSON string
	)
	if err := s.Scan(&p.ID, &p.Name, &p.InitialTempC, &stagesJSON, &p.CreatedAt); err != nil {
		return models.StoredProgram{}, err
	}
	var stages []oven.ProgramStage
	if err := json.Unmarshal([]byte(stagesJSON), &stages); err != nil {
		return models.StoredProgram{}, fmt.Errorf("decode stages of program %q: %w", p.ID, err)
	}
	p.Stages = stages
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
