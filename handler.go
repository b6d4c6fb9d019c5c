package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lg/nutrition-tracker-go-api/internal/nutrition"
	"lg/nutrition-tracker-go-api/internal/storage"
)

// Handler holds shared dependencies (stores, clock) for all route handlers.
type Handler struct {
	profiles *storage.ProfileStore
	foodLog  *storage.FoodLog
	now      func() time.Time // overridable for tests
}

func NewHandler(kv storage.KV) *Handler {
	return &Handler{
		profiles: storage.NewProfileStore(kv),
		foodLog:  storage.NewFoodLog(kv),
		now:      time.Now,
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// queryDate reads the "date" query param as YYYY-MM-DD, defaulting to today.
// Writes a 400 and returns ok=false on a malformed value.
func (h *Handler) queryDate(c *gin.Context) (nutrition.DateOnly, bool) {
	s := c.Query("date")
	if s == "" {
		return nutrition.Today(h.now()), true
	}
	d, err := nutrition.ParseDate(s)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return nutrition.DateOnly{}, false
	}
	return d, true
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the engine with middleware, CORS for the widget's origins,
// health and metrics endpoints, and the API routes.
func newRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), requestMetrics())
	router.SetTrustedProxies(nil)

	if len(allowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = allowedOrigins
		config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type"}
		router.Use(cors.New(config))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/profile", h.getProfile)
	api.PUT("/profile", h.putProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/food-log/daily", h.getDailySummary)
	api.GET("/food-log/entries", h.listFoodEntries)
	api.POST("/food-log/entries", h.createFoodEntry)
	api.DELETE("/food-log/entries/:id", h.deleteFoodEntry)
	api.GET("/advice", h.getAdvice)
	api.GET("/dates/shift", h.shiftDate)
}

// requestLogger logs every request once it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
