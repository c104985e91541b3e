package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/services/attendance"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "attendance.xlsx"
)

type markAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date"        binding:"required"`
	Status     string `json:"status"      binding:"required"`
}

func (h *Handler) markAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	record, err := h.attendance.MarkAttendance(c.Request.Context(), attendance.MarkInput{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		h.respondWithError(c, err, "Error marking attendance")
		return
	}

	c.JSON(http.StatusCreated, toAttendanceResponse(record))
}

func (h *Handler) listAttendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	records, err := h.attendance.ListAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, "Error fetching attendance records")
		return
	}

	c.JSON(http.StatusOK, toAttendanceResponses(records))
}

func (h *Handler) exportAttendance(c *gin.Context) {
	filter, err := parseAttendanceFilter(c)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	buf, err := h.attendance.ExportAttendance(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, "Error exporting attendance")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) getAttendance(c *gin.Context) {
	record, err := h.attendance.GetAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Error fetching attendance")
		return
	}

	c.JSON(http.StatusOK, toAttendanceResponse(record))
}

func (h *Handler) deleteAttendance(c *gin.Context) {
	if err := h.attendance.DeleteAttendance(c.Request.Context(), c.Param("id")); err != nil {
		h.respondWithError(c, err, "Error deleting attendance")
		return
	}

	c.JSON(http.StatusOK, ack("Attendance record deleted successfully"))
}

// parseAttendanceFilter reads the listing query. Absent parameters stay unset;
// malformed dates and a limit outside [1, attendance.MaxLimit] are rejected.
func parseAttendanceFilter(c *gin.Context) (models.AttendanceFilter, error) {
	filter := models.AttendanceFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		Limit:      attendance.DefaultLimit,
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := parseDate("start_date", raw)
		if err != nil {
			return models.AttendanceFilter{}, err
		}
		filter.StartDate = &start
	}

	if raw := c.Query("end_date"); raw != "" {
		end, err := parseDate("end_date", raw)
		if err != nil {
			return models.AttendanceFilter{}, err
		}
		filter.EndDate = &end
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return models.AttendanceFilter{}, errors.New("limit must be an integer")
		}
		if limit < 1 || limit > attendance.MaxLimit {
			return models.AttendanceFilter{}, fmt.Errorf("limit must be between 1 and %d", attendance.MaxLimit)
		}
		filter.Limit = limit
	}

	return filter, nil
}

func parseDate(field, raw string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", field)
	}

	return parsed, nil
}
