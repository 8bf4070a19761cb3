package handlers

import (
	"baking_oven/internal/logger"
	"baking_oven/internal/metrics"
	"baking_oven/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. m may be nil,
// in which case /metrics is not served.
func NewHandler(services *service.Service, m *metrics.Metrics, log *logger.Logger) *Handler {
	return &Handler{services: services, metrics: m, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// oven state stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerOvenRoutes(api)
		h.registerProgramRoutes(api)
		h.registerHardwareRoutes(api)
	}
}

func (h *Handler) registerOvenRoutes(api *gin.RouterGroup) {
	ovenGroup := api.Group("/oven")
	{
		// Body example: {"initial_temp":20,"stages":[{"target_temp":180,"stage_time":20,"heat":"GRILL"}]}
		ovenGroup.POST("/run", h.runProgram)
		ovenGroup.POST("/programs/:id/run", h.runStoredProgram)
		ovenGroup.POST("/reset", h.resetOven)
		ovenGroup.GET("/state", h.getState)
	}
}

func (h *Handler) registerProgramRoutes(api *gin.RouterGroup) {
	programs := api.Group("/programs")
	{
		programs.GET("", h.listPrograms)
		programs.POST("", h.createProgram)
		programs.GET("/:id", h.getProgram)
		programs.DELETE("/:id", h.deleteProgram)
	}
}

func (h *Handler) registerHardwareRoutes(api *gin.RouterGroup) {
	hw := api.Group("/hardware")
	{
		hw.GET("", h.hardwareStatus)
		hw.POST("/faults", h.injectFault)
		hw.DELETE("/faults", h.clearFaults)
	}
}
