package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// NewRouter wires the API routes behind recovery, request logging, metrics and CORS.
// An origin list of exactly "*" allows every origin.
func NewRouter(h *Handler, log *slog.Logger, m *metrics.Metrics, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(log),
		observeRequests(m),
		cors.New(corsConfig(corsOrigins)),
	)

	router.GET("/", h.root)
	router.GET("/health", h.health)

	api := router.Group("/api")

	employeesGroup := api.Group("/employees")
	{
		employeesGroup.POST("", h.createEmployee)
		employeesGroup.GET("", h.listEmployees)
		employeesGroup.GET("/suggest/next-id", h.suggestNextEmployeeID)
		employeesGroup.GET("/:id", h.getEmployee)
		employeesGroup.DELETE("/:id", h.deleteEmployee)
		employeesGroup.GET("/:id/attendance", h.getEmployeeAttendance)
	}

	attendanceGroup := api.Group("/attendance")
	{
		attendanceGroup.POST("", h.markAttendance)
		attendanceGroup.GET("", h.listAttendance)
		attendanceGroup.GET("/export", h.exportAttendance)
		attendanceGroup.GET("/:id", h.getAttendance)
		attendanceGroup.DELETE("/:id", h.deleteAttendance)
	}

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", h.dashboardStats)
		dashboardGroup.GET("/not-marked", h.notMarkedEmployees)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        corsMaxAge,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	log = log.With(slog.String("division", "http"))

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.InfoContext(c.Request.Context(), "request served",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

func observeRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
