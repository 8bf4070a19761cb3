package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"baking_oven/internal/hardware"
	"baking_oven/internal/models"
)

func TestMonitoringService_GetState(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("UTC+3", 3*3600))

	cases := []struct {
		name       string
		repo       *stateRepoStub
		fanOn      bool
		assertFunc func(t *testing.T, got models.OvenState, err error)
	}{
		{
			name: "propagates repository error",
			repo: &stateRepoStub{loadErr: errors.New("db down")},
			assertFunc: func(t *testing.T, got models.OvenState, err error) {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if got.ID != 0 {
					t.Errorf("expected zero state ID, got %d", got.ID)
				}
			},
		},
		{
			name: "returns baseline when no state (ID=0)",
			repo: &stateRepoStub{},
			assertFunc: func(t *testing.T, got models.OvenState, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.ID != 1 || got.Status != models.StatusIdle || got.CurrentStage != -1 {
					t.Errorf("unexpected baseline: %+v", got)
				}
				if got.UpdatedAt.IsZero() || got.UpdatedAt.Location() != time.UTC {
					t.Errorf("baseline UpdatedAt should be UTC now, got %v", got.UpdatedAt)
				}
			},
		},
		{
			name: "returns stored state in UTC with live fan flag",
			repo: &stateRepoStub{current: models.OvenState{
				ID:           1,
				Status:       models.StatusFailed,
				RunID:        "run-1",
				CurrentStage: 0,
				Heat:         "HEATER",
				UpdatedAt:    ts,
			}},
			fanOn: true,
			assertFunc: func(t *testing.T, got models.OvenState, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Status != models.StatusFailed || got.RunID != "run-1" || got.Heat != "HEATER" {
					t.Errorf("unexpected state: %+v", got)
				}
				if !got.FanOn {
					t.Errorf("expected fan flag from panel")
				}
				if got.UpdatedAt.Location() != time.UTC || !got.UpdatedAt.Equal(ts) {
					t.Errorf("UpdatedAt not normalized: %v", got.UpdatedAt)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			panel := hardware.NewPanel()
			if tc.fanOn {
				hardware.NewFan(panel).On()
			}
			svc := NewMonitoringService(tc.repo, panel)
			got, err := svc.GetState(context.Background())
			tc.assertFunc(t, got, err)
		})
	}
}

func TestMonitoringService_GetState_NoPanel(t *testing.T) {
	repo := &stateRepoStub{current: models.OvenState{ID: 1, Status: models.StatusDone, FanOn: true}}
	got, err := NewMonitoringService(repo, nil).GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FanOn {
		t.Fatalf("stored fan flag should be kept without a panel")
	}
}

func TestToUTC(t *testing.T) {
	if got := toUTC(time.Time{}); !got.IsZero() {
		t.Fatalf("zero time should stay zero, got %v", got)
	}
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)
	if got := toUTC(in); got.Location() != time.UTC || !got.Equal(in) {
		t.Fatalf("toUTC(%v) = %v", in, got)
	}
}
