package handlers

import (
	"errors"
	"net/http"

	"baking_oven/internal/oven"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK    = "ok"
	statusReset = "reset"

	errRunProgram      = "failed to run program"
	errResetOven       = "failed to reset oven"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// StageRequest is one stage of a program payload. Heat has no default.
type StageRequest struct {
	// Target temperature in Celsius
	TargetTemp int `json:"target_temp" example:"180"`
	// Stage duration in minutes
	StageTime int `json:"stage_time" example:"20"`
	// Heat type. Allowed: THERMO_CIRCULATION, GRILL, HEATER
	Heat *oven.HeatType `json:"heat" binding:"required" swaggertype:"string" example:"GRILL"`
}

// RunProgramRequest is the payload of POST /api/v1/oven/run.
type RunProgramRequest struct {
	// Initial oven temperature in Celsius (informational)
	InitialTemp int            `json:"initial_temp" example:"20"`
	Stages      []StageRequest `json:"stages" binding:"required,dive"`
}

func toStages(in []StageRequest) []oven.ProgramStage {
	out := make([]oven.ProgramStage, 0, len(in))
	for _, s := range in {
		out = append(out, oven.ProgramStage{TargetTemp: s.TargetTemp, StageTime: s.StageTime, Heat: *s.Heat})
	}
	return out
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Run a baking program
// @Description  Runs the stages in order and returns when the program finished or failed.
// @Tags         oven
// @Accept       json
// @Produce      json
// @Param        body  body   RunProgramRequest  true  "Program payload"
// @Success      200   {object}  service.RunResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}  "error, result"
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/oven/run [post]
// @Security     BearerAuth
func (h *Handler) runProgram(c *gin.Context) {
	var req RunProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p := oven.NewProgram(req.InitialTemp, toStages(req.Stages)...)
	res, err := h.services.Oven.Run(c.Request.Context(), p)
	h.respondRun(c, res, err)
}

// @Summary      Run a stored program
// @Tags         oven
// @Produce      json
// @Param        id   path      string  true  "Program ID"
// @Success      200  {object}  service.RunResult
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}  "error, result"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/oven/programs/{id}/run [post]
// @Security     BearerAuth
func (h *Handler) runStoredProgram(c *gin.Context) {
	id := c.Param("id")
	res, err := h.services.Oven.RunStored(c.Request.Context(), id)
	h.respondRun(c, res, err, "program_id", id)
}

func (h *Handler) respondRun(c *gin.Context, res any, err error, kv ...interface{}) {
	if err == nil {
		c.JSON(http.StatusOK, res)
		return
	}
	// stage failures are logged by the oven service
	if errors.Is(err, oven.ErrOven) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "result": res})
		return
	}
	h.respondServiceError(c, err, errRunProgram, "oven_run_rejected", append(kv, "operator_id", operatorID(c))...)
}

// @Summary      Reset the oven
// @Description  Switches the fan off and returns the oven to IDLE after a failed run
// @Tags         oven
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/oven/reset [post]
// @Security     BearerAuth
func (h *Handler) resetOven(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Oven.Reset(ctx); err != nil {
		h.respondServiceError(c, err, errResetOven, "oven_reset_failed")
		return
	}
	resp := gin.H{"status": statusReset}
	if st, err := h.services.Monitoring.GetState(ctx); err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get oven state
// @Tags         oven
// @Produce      json
// @Success      200  {object}  models.OvenState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/oven/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "oven_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
