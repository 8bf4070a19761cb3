package handlers

import (
	"context"
	"net/http"
	"sync"

	"baking_oven/internal/hardware"
	"baking_oven/internal/models"
	"baking_oven/internal/oven"
	"baking_oven/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockOven struct {
	runResult service.RunResult
	runErr    error
	resetErr  error

	lastProgram  oven.BakingProgram
	lastStoredID string
	lastOperator int
	runCalls     int
	resetCalls   int
}

func (m *mockOven) Run(ctx context.Context, p oven.BakingProgram) (service.RunResult, error) {
	m.runCalls++
	m.lastProgram = p
	m.lastOperator, _ = service.OperatorFrom(ctx)
	return m.runResult, m.runErr
}
func (m *mockOven) RunStored(ctx context.Context, id string) (service.RunResult, error) {
	m.runCalls++
	m.lastStoredID = id
	m.lastOperator, _ = service.OperatorFrom(ctx)
	return m.runResult, m.runErr
}
func (m *mockOven) Reset(ctx context.Context) error {
	m.resetCalls++
	m.lastOperator, _ = service.OperatorFrom(ctx)
	return m.resetErr
}

type mockPrograms struct {
	created   models.StoredProgram
	createErr error
	get       models.StoredProgram
	getErr    error
	list      []models.StoredProgram
	listErr   error
	deleteErr error

	lastInput  service.ProgramInput
	lastID     string
	lastFilter string
}

func (m *mockPrograms) Create(ctx context.Context, in service.ProgramInput) (models.StoredProgram, error) {
	m.lastInput = in
	return m.created, m.createErr
}
func (m *mockPrograms) Get(ctx context.Context, id string) (models.StoredProgram, error) {
	m.lastID = id
	return m.get, m.getErr
}
func (m *mockPrograms) List(ctx context.Context, nameFilter string) ([]models.StoredProgram, error) {
	m.lastFilter = nameFilter
	return m.list, m.listErr
}
func (m *mockPrograms) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.deleteErr
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.OvenState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.OvenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

func (m *mockMonitoring) set(st models.OvenState) {
	m.mu.Lock()
	m.state = st
	m.mu.Unlock()
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newHardwareService() (service.Hardware, *hardware.Panel) {
	panel := hardware.NewPanel()
	return service.NewHardwareService(panel), panel
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
