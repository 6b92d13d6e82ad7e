package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/mocks"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/auth"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers user successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		user := &entity.User{
			ID:         uuid.New(),
			Identifier: "driver01",
			Name:       "Test User",
			Role:       entity.RoleBusiness,
		}
		tokens := &auth.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    time.Now().Add(15 * time.Minute),
		}

		authSvc.EXPECT().Register(gomock.Any(), auth.RegisterInput{
			Identifier: "driver01",
			Password:   "password123",
			Name:       "Test User",
			Role:       entity.RoleBusiness,
		}).Return(tokens, user, nil)

		body := `{"identifier":"driver01","password":"password123","name":"Test User","role":"business"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", body))

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, "access-token", resp["access_token"])
		u := resp["user"].(map[string]any)
		assert.Equal(t, "driver01", u["identifier"])
		assert.Equal(t, "business", u["role"])
	})

	t.Run("returns conflict for existing identifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, nil, domain.ErrUserAlreadyExists)

		body := `{"identifier":"driver01","password":"password123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", body))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "USER_EXISTS", decodeBody(t, w)["code"])
	})

	t.Run("returns validation error for invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		cases := []string{
			`{"identifier":"driver01","password":"short"}`,
			`{"password":"password123"}`,
			`{"identifier":"driver01","password":"password123","role":"admin"}`,
		}
		for _, body := range cases {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", body))
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("logs in successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/login", h.Login)

		user := &entity.User{
			ID:         uuid.New(),
			Identifier: "driver01",
			Name:       "Test User",
			Role:       entity.RoleUser,
		}
		tokens := &auth.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    time.Now().Add(15 * time.Minute),
		}

		authSvc.EXPECT().Login(gomock.Any(), auth.LoginInput{
			Identifier: "driver01",
			Password:   "password123",
		}).Return(tokens, user, nil)

		body := `{"identifier":"driver01","password":"password123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/login", body))

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, "access-token", resp["access_token"])
		assert.Equal(t, "refresh-token", resp["refresh_token"])
	})

	t.Run("returns unauthorized for invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/login", h.Login)

		authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, domain.ErrInvalidCredentials)

		body := `{"identifier":"driver01","password":"wrong"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/login", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeBody(t, w)["code"])
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("refreshes token successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/refresh", h.Refresh)

		tokens := &auth.TokenPair{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			ExpiresAt:    time.Now().Add(15 * time.Minute),
		}

		authSvc.EXPECT().Refresh(gomock.Any(), "valid-refresh-token").Return(tokens, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/refresh", `{"refresh_token":"valid-refresh-token"}`))

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, "new-access-token", resp["access_token"])
		assert.Equal(t, "new-refresh-token", resp["refresh_token"])
	})

	t.Run("maps token errors to unauthorized", func(t *testing.T) {
		cases := map[string]error{
			"TOKEN_EXPIRED": domain.ErrTokenExpired,
			"TOKEN_REVOKED": domain.ErrTokenRevoked,
			"TOKEN_INVALID": domain.ErrTokenInvalid,
		}

		for code, svcErr := range cases {
			ctrl := gomock.NewController(t)

			authSvc := mocks.NewMockAuthService(ctrl)
			h := handler.NewAuthHandler(authSvc)

			router := setupRouter()
			router.POST("/refresh", h.Refresh)

			authSvc.EXPECT().Refresh(gomock.Any(), "some-token").Return(nil, svcErr)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/refresh", `{"refresh_token":"some-token"}`))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, code, decodeBody(t, w)["code"])
			ctrl.Finish()
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("logs out successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		userID := uuid.New()
		router.POST("/logout", func(c *gin.Context) {
			c.Set("user_id", userID)
			h.Logout(c)
		})

		authSvc.EXPECT().Logout(gomock.Any(), userID).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
