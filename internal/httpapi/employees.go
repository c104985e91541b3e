package httpapi

import (
	"net/http"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/gin-gonic/gin"
)

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	FullName   string `json:"full_name"   binding:"required"`
	Email      string `json:"email"       binding:"required"`
	Department string `json:"department"  binding:"required"`
}

func (h *Handler) createEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	employee, err := h.employees.CreateEmployee(c.Request.Context(), employees.CreateEmployeeInput{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		h.respondWithError(c, err, "Error creating employee")
		return
	}

	c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

func (h *Handler) listEmployees(c *gin.Context) {
	list, err := h.employees.ListEmployees(c.Request.Context(), models.EmployeeFilter{
		Department: c.Query("department"),
		Search:     c.Query("search"),
	})
	if err != nil {
		h.respondWithError(c, err, "Error fetching employees")
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponses(list))
}

func (h *Handler) getEmployee(c *gin.Context) {
	employee, err := h.employees.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Error fetching employee")
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (h *Handler) deleteEmployee(c *gin.Context) {
	if err := h.employees.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		h.respondWithError(c, err, "Error deleting employee")
		return
	}

	c.JSON(http.StatusOK, ack("Employee deleted successfully"))
}

func (h *Handler) getEmployeeAttendance(c *gin.Context) {
	stats, err := h.employees.GetEmployeeWithStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Error fetching employee attendance")
		return
	}

	c.JSON(http.StatusOK, toEmployeeStatsResponse(stats))
}

func (h *Handler) suggestNextEmployeeID(c *gin.Context) {
	suggested, err := h.employees.SuggestNextEmployeeID(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "Error generating employee ID")
		return
	}

	c.JSON(http.StatusOK, suggestedIDResponse{SuggestedID: suggested})
}
