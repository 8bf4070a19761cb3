package oven

import (
	"fmt"
)

// HeatingSettings is the argument of a single heating activation call.
type HeatingSettings struct {
	TargetTemp    int `json:"target_temp"`     // °C
	TimeInMinutes int `json:"time_in_minutes"` // minutes
}

// ProgramStage is one phase of a baking program.
type ProgramStage struct {
	TargetTemp int      `json:"target_temp"` // °C
	StageTime  int      `json:"stage_time"`  // minutes
	Heat       HeatType `json:"heat"`
}

// Settings derives the hardware call argument for the stage.
func (s ProgramStage) Settings() HeatingSettings {
	return HeatingSettings{TargetTemp: s.TargetTemp, TimeInMinutes: s.StageTime}
}

func (s ProgramStage) validate() error {
	if !s.Heat.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownHeatType, uint8(s.Heat))
	}
	if s.TargetTemp < 0 {
		return fmt.Errorf("%w: target temperature %d is negative", ErrInvalidStage, s.TargetTemp)
	}
	if s.StageTime < 0 {
		return fmt.Errorf("%w: stage time %d is negative", ErrInvalidStage, s.StageTime)
	}
	return nil
}

// BakingProgram is an initial temperature followed by an ordered list of stages.
// The stage slice is copied on construction and on read, so a program value
// cannot be changed through a slice it handed out.
type BakingProgram struct {
	initialTemp int
	stages      []ProgramStage
}

// NewProgram builds a program from the given stages.
func NewProgram(initialTemp int, stages ...ProgramStage) BakingProgram {
	return BakingProgram{initialTemp: initialTemp, stages: append([]ProgramStage(nil), stages...)}
}

// InitialTemp is informational; stages never consult it.
func (p BakingProgram) InitialTemp() int { return p.initialTemp }

func (p BakingProgram) Stages() []ProgramStage {
	return append([]ProgramStage(nil), p.stages...)
}

func (p BakingProgram) Len() int { return len(p.stages) }

// Validate checks that the program has at least one stage and that every
// stage carries a known heat type and non-negative temperature and time.
func (p BakingProgram) Validate() error {
	if len(p.stages) == 0 {
		return ErrEmptyProgram
	}
	for i, st := range p.stages {
		if err := st.validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return nil
}

// ---- builders ----

// HeatingSettingsBuilder assembles a HeatingSettings fluently.
type HeatingSettingsBuilder struct{ s HeatingSettings }

func NewHeatingSettings() *HeatingSettingsBuilder { return &HeatingSettingsBuilder{} }

func (b *HeatingSettingsBuilder) WithTargetTemp(c int) *HeatingSettingsBuilder {
	b.s.TargetTemp = c
	return b
}

func (b *HeatingSettingsBuilder) WithTimeInMinutes(m int) *HeatingSettingsBuilder {
	b.s.TimeInMinutes = m
	return b
}

func (b *HeatingSettingsBuilder) Build() HeatingSettings { return b.s }

// ProgramStageBuilder assembles a ProgramStage fluently.
type ProgramStageBuilder struct{ s ProgramStage }

func NewProgramStage() *ProgramStageBuilder { return &ProgramStageBuilder{} }

func (b *ProgramStageBuilder) WithTargetTemp(c int) *ProgramStageBuilder {
	b.s.TargetTemp = c
	return b
}

func (b *ProgramStageBuilder) WithStageTime(m int) *ProgramStageBuilder {
	b.s.StageTime = m
	return b
}

func (b *ProgramStageBuilder) WithHeat(h HeatType) *ProgramStageBuilder {
	b.s.Heat = h
	return b
}

func (b *ProgramStageBuilder) Build() ProgramStage { return b.s }

// BakingProgramBuilder assembles a BakingProgram fluently.
type BakingProgramBuilder struct {
	initialTemp int
	stages      []ProgramStage
}

func NewBakingProgram() *BakingProgramBuilder { return &BakingProgramBuilder{} }

func (b *BakingProgramBuilder) WithInitialTemp(c int) *BakingProgramBuilder {
	b.initialTemp = c
	return b
}

// WithStages replaces any stages added so far.
func (b *BakingProgramBuilder) WithStages(stages []ProgramStage) *BakingProgramBuilder {
	b.stages = append([]ProgramStage(nil), stages...)
	return b
}

func (b *BakingProgramBuilder) AddStage(st ProgramStage) *BakingProgramBuilder {
	b.stages = append(b.stages, st)
	return b
}

func (b *BakingProgramBuilder) Build() BakingProgram {
	return NewProgram(b.initialTemp, b.stages...)
}
