package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/user"
)

type UserHandler struct {
	userSvc UserService
}

func NewUserHandler(userSvc UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe godoc
//
//	@Summary	Current user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.UserResponse
//	@Failure	401	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.userSvc.GetMe(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UserFromEntity(u))
}

// UpdateMe godoc
//
//	@Summary	Update current user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		request.UpdateMeRequest	true	"Fields to change"
//	@Success	200		{object}	response.UserResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	401		{object}	httputil.ErrorResponse
//	@Router		/users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req request.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	u, err := h.userSvc.UpdateMe(c.Request.Context(), httputil.GetUserID(c), user.UpdateInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UserFromEntity(u))
}
