package routes // Router setup layer.

import (
	"net/http"
	"time"

	"github.com/dmleach/frock/global"
	"github.com/dmleach/frock/handlers"
	"github.com/dmleach/frock/middlewares"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Deps are the services and settings the router wires into handlers.
type Deps struct {
	Dispatch  services.DispatchService
	Auth      services.AuthService
	Log       *redislog.Logger // may be nil
	PathKey   any              // request key the dispatcher reads
	JWTSecret string
	JWTExpiry time.Duration
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, d Deps) {
	r.Use(middlewares.RequestLogger(d.Log), middlewares.Recovery(d.Log)) // Access log + panic recovery.

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	// Front controller: "/?path=..." plus every unmatched URL (rewrite to the path key).
	front := handlers.NewFrontHandler(d.Dispatch, models.RoleController, d.PathKey)
	r.Any("/", front.Dispatch)
	r.NoRoute(front.Dispatch)

	// Views are reachable directly under /views/<path>.
	views := handlers.NewFrontHandler(d.Dispatch, models.RoleView, d.PathKey)
	r.GET("/views/*path", views.Dispatch)

	api := r.Group("/api/v1")

	auth := handlers.NewAuthHandler(d.Auth, d.JWTSecret, d.JWTExpiry)
	api.POST("/auth/login", auth.Login) // public

	// Admin group (requires valid Authorization: Bearer <token>).
	admin := api.Group("/admin")
	admin.Use(middlewares.Auth(d.JWTSecret))

	ah := handlers.NewAdminHandler(d.Dispatch)
	admin.GET("/classes", ah.Classes)
	admin.GET("/resolve/:role/*path", ah.Resolve)
	admin.GET("/dispatches", ah.ListDispatches)
	admin.GET("/dispatches/:id", ah.GetDispatch)
	admin.GET("/debug-log", ah.DebugLog)
}
