package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.GetStats(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "Error fetching dashboard stats")
		return
	}

	c.JSON(http.StatusOK, toDashboardStatsResponse(stats))
}

func (h *Handler) notMarkedEmployees(c *gin.Context) {
	list, err := h.dashboard.GetNotMarkedEmployees(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "Error fetching not marked employees")
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponses(list))
}
