package service

import (
	"context"
	"fmt"
	"sync"

	"baking_oven/internal/models"
	"baking_oven/internal/repository"
)

// stateRepoStub satisfies repository.StateRepo and keeps every saved snapshot.
type stateRepoStub struct {
	mu      sync.Mutex
	current models.OvenState
	loadErr error
	saveErr error
	saved   []models.OvenState
}

func (s *stateRepoStub) Load(ctx context.Context) (models.OvenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loadErr
}

func (s *stateRepoStub) Save(ctx context.Context, st models.OvenState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, st)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.current = st
	return nil
}

func (s *stateRepoStub) last() models.OvenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return models.OvenState{}
	}
	return s.saved[len(s.saved)-1]
}

// programRepoStub is an in-memory repository.ProgramRepo.
type programRepoStub struct {
	items   map[string]models.StoredProgram
	order   []string
	err     error
	lastArg string
}

func newProgramRepoStub(items ...models.StoredProgram) *programRepoStub {
	s := &programRepoStub{items: make(map[string]models.StoredProgram)}
	for _, p := range items {
		s.items[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *programRepoStub) Create(ctx context.Context, p models.StoredProgram) (models.StoredProgram, error) {
	if s.err != nil {
		return models.StoredProgram{}, s.err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", len(s.order)+1)
	}
	s.items[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *programRepoStub) Get(ctx context.Context, id string) (models.StoredProgram, error) {
	if s.err != nil {
		return models.StoredProgram{}, s.err
	}
	p, ok := s.items[id]
	if !ok {
		return models.StoredProgram{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *programRepoStub) List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error) {
	s.lastArg = nameFilter
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.StoredProgram, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *programRepoStub) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	return nil
}
