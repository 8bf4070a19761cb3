package repository

import (
	"context"
	"database/sql"
	"errors"

	"baking_oven/internal/models"
	"baking_oven/internal/repository/db"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type StateRepo interface {
	Save(ctx context.Context, s models.OvenState) error
	Load(ctx context.Context) (models.OvenState, error)
}

type ProgramRepo interface {
	Create(ctx context.Context, p models.StoredProgram) (models.StoredProgram, error)
	Get(ctx context.Context, id string) (models.StoredProgram, error)
	List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	StateRepo   StateRepo
	ProgramRepo ProgramRepo
	Auth        Authorization
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		StateRepo:   NewStateSQLite(conn),
		ProgramRepo: NewProgramSQLite(conn),
		Auth:        NewUserRepository(conn),
	}
}

// InitDB opens the SQLite database at path and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
