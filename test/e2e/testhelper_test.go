package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/trip-report-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/ai"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/server"
	authUC "github.com/marcos-nsantos/trip-report-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/device"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/report"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/user"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Archive    *memoryArchive
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	// Initialize repositories
	userRepo := pgRepo.NewUserRepo(pool)
	refreshTokenRepo := pgRepo.NewRefreshTokenRepo(pool)
	deviceRepo := pgRepo.NewDeviceRepo(pool)
	trackRepo := pgRepo.NewTrackRepo(pool)
	reportRepo := pgRepo.NewReportRepo(pool)

	// Initialize infrastructure services
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests
	metrics := observability.NewMetrics()
	logger, _ := zap.NewDevelopment()

	// In-memory archive for e2e tests (avoids S3 dependency)
	archive := &memoryArchive{objects: map[string][]byte{}}

	// Initialize use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, 24*time.Hour)
	userSvc := user.NewService(userRepo, passwordHasher)
	deviceSvc := device.NewService(deviceRepo, trackRepo)
	reportSvc := report.NewService(deviceRepo, trackRepo, reportRepo, ai.NewTemplateSummarizer(), archive, metrics, logger)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authSvc),
		UserHandler:    handler.NewUserHandler(userSvc),
		DeviceHandler:  handler.NewDeviceHandler(deviceSvc),
		ReportHandler:  handler.NewReportHandler(reportSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Metrics:        metrics,
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Archive:   archive,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// registerUser creates an account and returns its access token.
func (app *TestApp) registerUser(t *testing.T, identifier string) string {
	t.Helper()

	resp, err := app.post("/auth/register", map[string]string{
		"identifier": identifier,
		"password":   "password123",
		"name":       "Test User",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	parseResponse(t, resp, &body)
	return body["access_token"].(string)
}

// createDevice registers a device and returns its id.
func (app *TestApp) createDevice(t *testing.T, token, imei string) string {
	t.Helper()

	resp, err := app.post("/devices", map[string]string{"imei": imei}, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	parseResponse(t, resp, &body)
	return body["id"].(string)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

type memoryArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (a *memoryArchive) Put(_ context.Context, key string, body []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[key] = body
	return nil
}

func (a *memoryArchive) keys() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	keys := make([]string, 0, len(a.objects))
	for k := range a.objects {
		keys = append(keys, k)
	}
	return keys
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
