package handlers

import (
	"net/http"

	"baking_oven/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCreateProgram = "failed to create program"
	errLoadProgram   = "failed to load program"
	errListPrograms  = "failed to list programs"
	errDeleteProgram = "failed to delete program"
)

// CreateProgramRequest is the payload of POST /api/v1/programs.
type CreateProgramRequest struct {
	Name        string         `json:"name" binding:"required" example:"Sourdough"`
	InitialTemp int            `json:"initial_temp" example:"20"`
	Stages      []StageRequest `json:"stages" binding:"required,dive"`
}

// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Param        name  query   string  false  "Case-insensitive name filter"
// @Success      200   {object}  map[string]interface{}  "count, programs"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/programs [get]
// @Security     BearerAuth
func (h *Handler) listPrograms(c *gin.Context) {
	name := c.Query("name")
	list, err := h.services.Programs.List(c.Request.Context(), name)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPrograms, "program_list_failed", err, "name", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(list),
		"programs": list,
	})
}

// @Summary      Create program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        body  body   CreateProgramRequest  true  "Program payload"
// @Success      201   {object}  models.StoredProgram
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/programs [post]
// @Security     BearerAuth
func (h *Handler) createProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p, err := h.services.Programs.Create(c.Request.Context(), service.ProgramInput{
		Name:         req.Name,
		InitialTempC: req.InitialTemp,
		Stages:       toStages(req.Stages),
	})
	if err != nil {
		h.respondServiceError(c, err, errCreateProgram, "program_create_failed", "name", req.Name)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Get program
// @Tags         programs
// @Produce      json
// @Param        id   path      string  true  "Program ID"
// @Success      200  {object}  models.StoredProgram
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/programs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProgram(c *gin.Context) {
	id := c.Param("id")
	p, err := h.services.Programs.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, errLoadProgram, "program_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete program
// @Tags         programs
// @Param        id   path      string  true  "Program ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/programs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProgram(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Programs.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errDeleteProgram, "program_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
