package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/gin-gonic/gin"
)

var statusByCode = map[apperror.Code]int{
	apperror.CodeValidation: http.StatusUnprocessableEntity,
	apperror.CodeNotFound:   http.StatusNotFound,
	apperror.CodeConflict:   http.StatusBadRequest,
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// respondWithError writes err using the status of its kind. Unclassified
// errors become 500 with detail "<prefix>: <err>".
func (h *Handler) respondWithError(c *gin.Context, err error, prefix string) {
	if status, ok := statusByCode[apperror.GetCode(err)]; ok {
		c.AbortWithStatusJSON(status, errorResponse{Detail: err.Error()})
		return
	}

	h.log.ErrorContext(c.Request.Context(), prefix,
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		sl.Err(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Detail: prefix + ": " + err.Error()})
}

func respondInvalid(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
}
