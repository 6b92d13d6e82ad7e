package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/httputil"
)

// pathID parses a uuid path parameter and writes a 400 when it is malformed.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid device id")
		return uuid.Nil, false
	}
	return id, true
}

func queryDateRange(c *gin.Context) (*valueobject.DateRange, bool) {
	var req request.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "start_date and end_date are required")
		return nil, false
	}

	dateRange, err := valueobject.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE_FORMAT", "dates must use YYYY-MM-DD")
		return nil, false
	}

	return dateRange, true
}
