package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"baking_oven/internal/models"
	"baking_oven/internal/repository"
)

const maxProgramNameLen = 120

type ProgramService struct {
	programRepo repository.ProgramRepo
}

func NewProgramService(programRepo repository.ProgramRepo) *ProgramService {
	return &ProgramService{programRepo: programRepo}
}

var errProgramName = errors.New("program name is required")

// Create validates in and stores it in the catalog.
func (s *ProgramService) Create(ctx context.Context, in ProgramInput) (models.StoredProgram, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.StoredProgram{}, fmt.Errorf("%w: %w", ErrInvalidProgram, errProgramName)
	}
	if len(name) > maxProgramNameLen {
		return models.StoredProgram{}, fmt.Errorf("%w: name longer than %d characters", ErrInvalidProgram, maxProgramNameLen)
	}
	if err := in.Program().Validate(); err != nil {
		return models.StoredProgram{}, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}
	return s.programRepo.Create(ctx, models.StoredProgram{
		Name:         name,
		InitialTempC: in.InitialTempC,
		Stages:       in.Program().Stages(),
	})
}

func (s *ProgramService) Get(ctx context.Context, id string) (models.StoredProgram, error) {
	p, err := s.programRepo.Get(ctx, id)
	return p, mapNotFound(err)
}

func (s *ProgramService) List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error) {
	return s.programRepo.List(ctx, strings.TrimSpace(nameFilter))
}

func (s *ProgramService) Delete(ctx context.Context, id string) error {
	return mapNotFound(s.programRepo.Delete(ctx, id))
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgramNotFound
	}
	return err
}
