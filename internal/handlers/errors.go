package handlers

import (
	"errors"
	"net/http"

	"baking_oven/internal/oven"
	"baking_oven/internal/service"

	"github.com/gin-gonic/gin"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps service errors to HTTP status codes. The bool reports
// whether err is a client-visible condition whose text can be returned as is.
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrOvenBusy), errors.Is(err, service.ErrResetRequired):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrProgramNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, service.ErrInvalidProgram):
		return http.StatusBadRequest, true
	case errors.Is(err, oven.ErrOven):
		return http.StatusUnprocessableEntity, true
	default:
		return http.StatusInternalServerError, false
	}
}

// respondServiceError writes err using statusFor; internal errors get fallback as message.
func (h *Handler) respondServiceError(c *gin.Context, err error, fallback, logKey string, kv ...interface{}) {
	code, public := statusFor(err)
	if !public {
		h.logAndJSONError(c, code, fallback, logKey, err, kv...)
		return
	}
	if h.log != nil {
		h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
