package handlers

import (
	"net/http"
	"strings"

	"baking_oven/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMissingAuth   = "missing Authorization header"
	errMalformedAuth = "invalid Authorization header format"
	errBadToken      = "invalid or expired token"
)

// operatorMiddleware authenticates the bearer token and attaches the operator
// to the request context, so services can stamp and log who drove the oven.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	token, msg := bearerToken(c.GetHeader("Authorization"))
	if msg != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err, "path", c.FullPath())
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errBadToken})
		return
	}

	c.Request = c.Request.WithContext(service.WithOperator(c.Request.Context(), userID))
	c.Next()
}

// bearerToken extracts the token from an Authorization header value. msg is
// the client-facing reason when the header is unusable.
func bearerToken(header string) (token, msg string) {
	if header == "" {
		return "", errMissingAuth
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errMalformedAuth
	}
	return token, ""
}

// operatorID is the authenticated caller, 0 outside protected routes.
func operatorID(c *gin.Context) int {
	id, _ := service.OperatorFrom(c.Request.Context())
	return id
}
