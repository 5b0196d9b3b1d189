package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/content-studio-team/content-studio/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authHandler       *Auth
	programHandler    *Program
	generationHandler *Generation
	authMiddleware    echo.MiddlewareFunc
	ownerMiddleware   echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, programHandler *Program, generationHandler *Generation, authMiddleware, ownerMiddleware echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:               cfg,
		authHandler:       authHandler,
		programHandler:    programHandler,
		generationHandler: generationHandler,
		authMiddleware:    authMiddleware,
		ownerMiddleware:   ownerMiddleware,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupProgramRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	if rt.authHandler == nil {
		authGroup.POST("/register", rt.notImplemented)
		authGroup.POST("/login", rt.notImplemented)
		authGroup.POST("/refresh", rt.notImplemented)
		return
	}

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
}

// setupProgramRoutes configures program, asset and generation routes. All
// routes require authentication; routes addressing one program also
// require ownership.
func (rt *Router) setupProgramRoutes(g *echo.Group) {
	programs := g.Group("/programs")
	if rt.authMiddleware != nil {
		programs.Use(rt.authMiddleware)
	}

	if rt.programHandler != nil {
		programs.POST("", rt.programHandler.Create)
		programs.GET("", rt.programHandler.List)
	}

	one := programs.Group("/:id")
	if rt.ownerMiddleware != nil {
		one.Use(rt.ownerMiddleware)
	}

	if rt.programHandler != nil {
		one.GET("", rt.programHandler.Get)
		one.PUT("", rt.programHandler.Update)
		one.DELETE("", rt.programHandler.Delete)
		one.GET("/stats", rt.programHandler.Stats)
		one.POST("/assets", rt.programHandler.AttachAsset)
		one.POST("/assets/upload", rt.programHandler.UploadAsset)
	}

	if rt.generationHandler != nil {
		one.POST("/assets/:assetId/generate", rt.generationHandler.Generate)
		one.GET("/assets/:assetId/artifacts", rt.generationHandler.ListArtifacts)
		one.POST("/assets/:assetId/artifacts/:artifactId/regenerate", rt.generationHandler.Regenerate)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
