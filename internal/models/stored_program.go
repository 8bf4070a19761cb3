package models

import (
	"time"

	"baking_oven/internal/oven"
)

// StoredProgram is a named baking program kept in the program catalog.
type StoredProgram struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	InitialTempC int                 `json:"initial_temp_c"`
	Stages       []oven.ProgramStage `json:"stages"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Program converts the catalog entry into an executable program.
func (p StoredProgram) Program() oven.BakingProgram {
	return oven.NewProgram(p.InitialTempC, p.Stages...)
}
