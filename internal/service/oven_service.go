package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"baking_oven/internal/hardware"
	"baking_oven/internal/logger"
	"baking_oven/internal/metrics"
	"baking_oven/internal/models"
	"baking_oven/internal/oven"
	"baking_oven/internal/repository"

	"github.com/google/uuid"
)

// OvenService serializes program runs on a single controller and keeps the
// persisted snapshot in step with them. The controller leaves the fan on
// after a failed stage, so a FAILED snapshot blocks new runs until Reset.
type OvenService struct {
	mu sync.Mutex

	oven      *oven.Oven
	fan       oven.Fan
	panel     *hardware.Panel
	stateRepo repository.StateRepo
	programs  repository.ProgramRepo
	metrics   *metrics.Metrics
	log       *logger.Logger

	now func() time.Time
}

func NewOvenService(
	ovn *oven.Oven,
	fan oven.Fan,
	panel *hardware.Panel,
	stateRepo repository.StateRepo,
	programs repository.ProgramRepo,
	m *metrics.Metrics,
	log *logger.Logger,
) *OvenService {
	return &OvenService{
		oven:      ovn,
		fan:       fan,
		panel:     panel,
		stateRepo: stateRepo,
		programs:  programs,
		metrics:   m,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run executes p synchronously. It returns ErrOvenBusy while another run or
// reset holds the oven, ErrResetRequired after a failed or interrupted run, ErrInvalidProgram
// for a malformed program and *oven.OvenError when a stage fails. The result
// is populated whenever the program actually started.
func (s *OvenService) Run(ctx context.Context, p oven.BakingProgram) (RunResult, error) {
	return s.run(ctx, "", p)
}

// RunStored loads a catalog program and runs it.
func (s *OvenService) RunStored(ctx context.Context, programID string) (RunResult, error) {
	sp, err := s.programs.Get(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return RunResult{}, ErrProgramNotFound
		}
		return RunResult{}, err
	}
	return s.run(ctx, sp.ID, sp.Program())
}

func (s *OvenService) run(ctx context.Context, programID string, p oven.BakingProgram) (RunResult, error) {
	if !s.mu.TryLock() {
		return RunResult{}, ErrOvenBusy
	}
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}
	if err := p.Validate(); err != nil {
		s.metrics.RecordRun(metrics.StatusRejected, 0)
		return RunResult{}, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}

	prev, err := s.stateRepo.Load(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load oven state: %w", err)
	}
	// a RUNNING snapshot seen under the lock was left by a process that died mid-run
	if prev.NeedsReset() {
		return RunResult{}, ErrResetRequired
	}

	res := RunResult{RunID: uuid.NewString(), ProgramID: programID, OperatorID: operatorID(ctx)}
	stages := p.Stages()
	running := models.OvenState{
		ID:           1,
		Status:       models.StatusRunning,
		RunID:        res.RunID,
		ProgramID:    programID,
		FanOn:        true,
		StageCount:   len(stages),
		CurrentStage: -1,
		UpdatedAt:    s.now(),
	}
	if err := s.stateRepo.Save(ctx, running); err != nil {
		return RunResult{}, fmt.Errorf("save oven state: %w", err)
	}
	s.logInfo("oven_run_started", "run_id", res.RunID, "program_id", programID, "operator_id", res.OperatorID, "stages", len(stages))

	started := time.Now()
	runErr := s.oven.Start(p)
	res.Duration = time.Since(started)
	s.metrics.RecordRun(metrics.RunStatus(runErr), res.Duration)

	final := running
	final.UpdatedAt = s.now()
	var ovenErr *oven.OvenError
	switch {
	case runErr == nil:
		res.Status = models.StatusDone
		res.Completed = len(stages)
		final.Status = models.StatusDone
		final.FanOn = false
		applyStage(&final, len(stages)-1, stages[len(stages)-1])
		s.logInfo("oven_run_done", "run_id", res.RunID, "operator_id", res.OperatorID, "duration", res.Duration)
	case errors.As(runErr, &ovenErr):
		res.Status = models.StatusFailed
		res.Completed = ovenErr.Stage
		final.Status = models.StatusFailed
		final.LastError = runErr.Error()
		applyStage(&final, ovenErr.Stage, stages[ovenErr.Stage])
		s.logError("oven_run_failed", runErr, "run_id", res.RunID, "operator_id", res.OperatorID,
			"stage", ovenErr.Stage, "heat", ovenErr.Heat.String())
	default:
		// Start validates before touching hardware and the program was validated above.
		return RunResult{}, runErr
	}
	if s.panel != nil {
		final.FanOn = s.panel.Snapshot().FanOn
	}

	// the run has already happened; persist the outcome even if the caller went away
	if err := s.stateRepo.Save(context.WithoutCancel(ctx), final); err != nil {
		s.logError("oven_state_save_failed", err, "run_id", res.RunID)
		return res, errors.Join(runErr, fmt.Errorf("save oven state: %w", err))
	}
	return res, runErr
}

func applyStage(st *models.OvenState, idx int, stage oven.ProgramStage) {
	st.CurrentStage = idx
	st.Heat = stage.Heat.String()
	st.TargetTempC = stage.TargetTemp
	st.StageMinutes = stage.StageTime
}

// Reset switches the fan off and returns the oven to IDLE. It is the only way
// out of FAILED or a stale RUNNING and is harmless when the oven is already idle.
func (s *OvenService) Reset(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrOvenBusy
	}
	defer s.mu.Unlock()

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load oven state: %w", err)
	}
	prevStatus := st.Status

	s.fan.Off()

	st.ID = 1
	st.Status = models.StatusIdle
	st.FanOn = false
	st.LastError = ""
	st.UpdatedAt = s.now()
	if st.RunID == "" {
		st.CurrentStage = -1
	}
	if err := s.stateRepo.Save(ctx, st); err != nil {
		return fmt.Errorf("save oven state: %w", err)
	}
	s.logInfo("oven_reset", "previous_status", prevStatus, "operator_id", operatorID(ctx))
	return nil
}

func (s *OvenService) logInfo(msg string, kv ...interface{}) {
	if s.log != nil {
		s.log.Infow(msg, kv...)
	}
}

func (s *OvenService) logError(msg string, err error, kv ...interface{}) {
	if s.log != nil {
		s.log.Errorw(msg, append([]interface{}{"err", err}, kv...)...)
	}
}
