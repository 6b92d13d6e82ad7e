package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/httputil"
)

type DeviceHandler struct {
	deviceSvc DeviceService
	now       func() time.Time
}

func NewDeviceHandler(deviceSvc DeviceService) *DeviceHandler {
	return &DeviceHandler{
		deviceSvc: deviceSvc,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create godoc
//
//	@Summary		Register a device
//	@Description	Register a tracker by IMEI for the current user
//	@Tags			devices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateDeviceRequest	true	"Device data"
//	@Success		201		{object}	response.DeviceResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"IMEI already registered"
//	@Router			/devices [post]
func (h *DeviceHandler) Create(c *gin.Context) {
	var req request.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	d, err := h.deviceSvc.Create(c.Request.Context(), httputil.GetUserID(c), req.IMEI)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.DeviceFromEntity(d))
}

// List godoc
//
//	@Summary	List devices
//	@Tags		devices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page		query		int	false	"Page number"
//	@Param		per_page	query		int	false	"Items per page"
//	@Success	200			{object}	response.DevicesListResponse
//	@Router		/devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	devices, pageInfo, err := h.deviceSvc.List(c.Request.Context(), httputil.GetUserID(c), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.DevicesListResponse{
		Devices:    response.DevicesFromEntities(devices),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

// Get godoc
//
//	@Summary	Get a device
//	@Tags		devices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Device ID"
//	@Success	200	{object}	response.DeviceResponse
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/devices/{id} [get]
func (h *DeviceHandler) Get(c *gin.Context) {
	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.deviceSvc.GetByID(c.Request.Context(), httputil.GetUserID(c), deviceID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.DeviceFromEntity(d))
}

// Report godoc
//
//	@Summary		Report device status
//	@Description	Update the device snapshot and append a track point
//	@Tags			devices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Device ID"
//	@Param			request	body		request.ReportStatusRequest	true	"Status message"
//	@Success		200		{object}	response.DeviceResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Router			/devices/{id} [put]
func (h *DeviceHandler) Report(c *gin.Context) {
	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request.ReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	status, err := req.ToStatusReport(h.now())
	if err != nil {
		httputil.ValidationError(c, err)
		return
	}

	d, err := h.deviceSvc.Report(c.Request.Context(), httputil.GetUserID(c), deviceID, status)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.DeviceFromEntity(d))
}

// Delete godoc
//
//	@Summary	Delete a device
//	@Tags		devices
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Device ID"
//	@Success	204	"No content"
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/devices/{id} [delete]
func (h *DeviceHandler) Delete(c *gin.Context) {
	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deviceSvc.Delete(c.Request.Context(), httputil.GetUserID(c), deviceID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// Track godoc
//
//	@Summary	Device track
//	@Tags		devices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string	true	"Device ID"
//	@Param		start_date	query		string	true	"YYYY-MM-DD"
//	@Param		end_date	query		string	true	"YYYY-MM-DD"
//	@Success	200			{object}	response.TrackResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Failure	403			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Router		/devices/{id}/track [get]
func (h *DeviceHandler) Track(c *gin.Context) {
	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(c)
	if !ok {
		return
	}

	result, err := h.deviceSvc.Track(c.Request.Context(), httputil.GetUserID(c), deviceID, dateRange)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.TrackFromEntities(result.Tracks, result.Bounds))
}
