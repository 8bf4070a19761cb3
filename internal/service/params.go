package service

import (
	"time"

	"baking_oven/internal/oven"
)

// ProgramInput is the payload for creating a catalog entry.
type ProgramInput struct {
	Name         string
	InitialTempC int
	Stages       []oven.ProgramStage
}

// Program converts the input to an executable program.
func (in ProgramInput) Program() oven.BakingProgram {
	return oven.NewProgram(in.InitialTempC, in.Stages...)
}

// RunResult summarizes a finished (or aborted) run.
type RunResult struct {
	RunID      string        `json:"run_id"`
	ProgramID  string        `json:"program_id,omitempty"`
	OperatorID int           `json:"operator_id,omitempty"` // user who started the run
	Status     string        `json:"status"`                // DONE | FAILED
	Completed  int           `json:"stages_completed"`
	Duration   time.Duration `json:"duration_ns"`
}
