// Package router builds the gin engine from the composed application.
package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	apphttp "dhl_location_finder/internal/http"
	"dhl_location_finder/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New creates the gin engine, installs shared middleware and lets every module register its routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	// Engine-level so preflight requests are answered even though no OPTIONS route exists.
	engine.Use(apiCORS(cors.New(corsConfig(app.Config))))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/api/ready", func(c *gin.Context) {
		if app.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := app.Health.Ping(ctx); err != nil {
			app.Logger.WithContext(c.Request.Context()).Error("readiness check failed", "error", err)
			httpkit.Error(c, http.StatusServiceUnavailable, "settings store unavailable", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminAuth := httpkit.AdminAuth(app.Config)

	v1 := engine.Group("/api/v1")
	admin := v1.Group("/admin", adminAuth)

	pages := engine.Group("")
	adminPages := engine.Group("/admin", adminAuth)

	rc := &apphttp.RouterContext{
		Engine:     engine,
		Pages:      pages,
		AdminPages: adminPages,
		V1:         v1,
		Admin:      admin,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(rc)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

// apiCORS applies the CORS handler to /api/ paths only; pages are same-origin.
func apiCORS(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			handler(c)
		}
	}
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", httpkit.RequestIDHeader},
		ExposeHeaders: []string{httpkit.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// cors.New panics when no origin is allowed at all.
	if cfg.GetCORSAllowAll() || len(cfg.GetCORSOrigins()) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}
