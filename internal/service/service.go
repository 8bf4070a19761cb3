package service

import (
	"context"
	"errors"

	"baking_oven/internal/hardware"
	"baking_oven/internal/logger"
	"baking_oven/internal/metrics"
	"baking_oven/internal/models"
	"baking_oven/internal/oven"
	"baking_oven/internal/repository"
)

// Service-level errors mapped to HTTP status codes by the handlers.
var (
	ErrOvenBusy        = errors.New("oven is already running a program")
	ErrResetRequired   = errors.New("previous run failed; reset the oven before starting a new program")
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidProgram  = errors.New("invalid program")
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Oven runs programs one at a time and owns the post-failure reset.
type Oven interface {
	Run(ctx context.Context, p oven.BakingProgram) (RunResult, error)
	RunStored(ctx context.Context, programID string) (RunResult, error)
	Reset(ctx context.Context) error
}

// Programs is the catalog of named baking programs.
type Programs interface {
	Create(ctx context.Context, in ProgramInput) (models.StoredProgram, error)
	Get(ctx context.Context, id string) (models.StoredProgram, error)
	List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error)
	Delete(ctx context.Context, id string) error
}

// Monitoring exposes the read-only oven snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (models.OvenState, error)
}

// Hardware exposes fault injection on the simulated drivers.
type Hardware interface {
	InjectFault(heat oven.HeatType, reason string)
	ClearFaults()
	Status() hardware.Status
}

type Service struct {
	Oven
	Programs
	Monitoring
	Hardware
	Authorization
}

// Deps carries everything NewService needs besides the repositories.
type Deps struct {
	Panel   *hardware.Panel
	Heating oven.HeatingModule
	Fan     oven.Fan
	Metrics *metrics.Metrics
	Log     *logger.Logger
	Auth    AuthConfig
}

// NewService wires repositories and hardware drivers into the concrete services.
// The drivers are wrapped with metric decorators before reaching the controller.
func NewService(repos *repository.Repository, d Deps) *Service {
	heating := metrics.InstrumentHeating(d.Heating, d.Metrics)
	fan := metrics.InstrumentFan(d.Fan, d.Metrics)
	return &Service{
		Oven:          NewOvenService(oven.New(heating, fan), fan, d.Panel, repos.StateRepo, repos.ProgramRepo, d.Metrics, d.Log),
		Programs:      NewProgramService(repos.ProgramRepo),
		Monitoring:    NewMonitoringService(repos.StateRepo, d.Panel),
		Hardware:      NewHardwareService(d.Panel),
		Authorization: NewAuthService(repos.Auth, d.Auth),
	}
}
