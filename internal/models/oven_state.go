package models

import "time"

// Run status values stored in OvenState.Status.
const (
	StatusIdle    = "IDLE"
	StatusRunning = "RUNNING"
	StatusDone    = "DONE"
	StatusFailed  = "FAILED"
)

// OvenState is the current snapshot of the oven. Only the latest run is kept.
type OvenState struct {
	ID           int       `json:"id"`
	Status       string    `json:"status"`                  // IDLE | RUNNING | DONE | FAILED
	RunID        string    `json:"run_id,omitempty"`        // latest run
	ProgramID    string    `json:"program_id,omitempty"`    // set when a stored program ran
	FanOn        bool      `json:"fan_on"`
	StageCount   int       `json:"stage_count,omitempty"`   // stages in the latest run
	CurrentStage int       `json:"current_stage"`           // index of the last activated stage, -1 if none
	Heat         string    `json:"heat,omitempty"`          // THERMO_CIRCULATION | GRILL | HEATER
	TargetTempC  int       `json:"target_temp_c,omitempty"` // °C
	StageMinutes int       `json:"stage_minutes,omitempty"` // minutes
	LastError    string    `json:"last_error,omitempty"`    // cause of the latest failure
	UpdatedAt    time.Time `json:"updated_at"`
}

// NeedsReset reports whether the last run left the hardware in an undefined
// state: it failed, or it was interrupted and never recorded an outcome.
func (s OvenState) NeedsReset() bool {
	return s.Status == StatusFailed || s.Status == StatusRunning
}
