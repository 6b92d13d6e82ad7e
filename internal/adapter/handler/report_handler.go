package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/httputil"
)

type ReportHandler struct {
	reportSvc ReportService
}

func NewReportHandler(reportSvc ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Generate godoc
//
//	@Summary		Generate a trip report
//	@Description	Analyse the device track in the date range and summarise it
//	@Tags			reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			device_id	path		string	true	"Device ID"
//	@Param			start_date	query		string	true	"YYYY-MM-DD"
//	@Param			end_date	query		string	true	"YYYY-MM-DD"
//	@Success		200			{object}	response.ReportResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Failure		404			{object}	httputil.ErrorResponse	"Device missing or no tracks in range"
//	@Failure		429			{object}	httputil.ErrorResponse
//	@Failure		502			{object}	httputil.ErrorResponse	"Summarizer reply unusable"
//	@Router			/reports/{device_id} [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	deviceID, ok := pathID(c, "device_id")
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(c)
	if !ok {
		return
	}

	result, err := h.reportSvc.Generate(c.Request.Context(), httputil.GetUserID(c), deviceID, dateRange)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReportFromResult(result))
}

// History godoc
//
//	@Summary	Stored reports of a device
//	@Tags		reports
//	@Produce	json
//	@Security	BearerAuth
//	@Param		device_id	path		string	true	"Device ID"
//	@Param		page		query		int		false	"Page number"
//	@Param		per_page	query		int		false	"Items per page"
//	@Success	200			{object}	response.ReportHistoryResponse
//	@Failure	403			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Router		/reports/{device_id}/history [get]
func (h *ReportHandler) History(c *gin.Context) {
	deviceID, ok := pathID(c, "device_id")
	if !ok {
		return
	}

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	reports, pageInfo, err := h.reportSvc.History(c.Request.Context(), httputil.GetUserID(c), deviceID, req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReportHistoryResponse{
		Reports:    response.ReportsFromEntities(reports),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}
