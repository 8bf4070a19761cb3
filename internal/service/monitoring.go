package service

import (
	"context"
	"time"

	"baking_oven/internal/hardware"
	"baking_oven/internal/models"
	"baking_oven/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
	panel     *hardware.Panel
}

func NewMonitoringService(stateRepo repository.StateRepo, panel *hardware.Panel) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo, panel: panel}
}

// GetState returns the persisted snapshot, or an IDLE baseline if none exists.
// The fan flag is taken from the live panel when one is attached.
func (s *MonitoringService) GetState(ctx context.Context) (models.OvenState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.OvenState{}, err
	}
	if state.ID == 0 {
		state = s.baselineState()
	} else {
		state.UpdatedAt = toUTC(state.UpdatedAt)
	}
	if s.panel != nil {
		state.FanOn = s.panel.Snapshot().FanOn
	}
	return state, nil
}

// baselineState is reported before the first run has been recorded.
func (s *MonitoringService) baselineState() models.OvenState {
	return models.OvenState{
		ID:           1, // DB schema enforces single-row state with id=1
		Status:       models.StatusIdle,
		CurrentStage: -1,
		UpdatedAt:    time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
