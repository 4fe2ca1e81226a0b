package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-service/internal/config"
	"employee-service/internal/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	cfg := &config.Config{PublicBaseURL: "http://hr.test"}

	r := gin.New()
	useCommon(r, zap.NewNop())
	registerModules(r, sqlDB, gormDB, nil, cfg, zap.NewNop())
	return r, mock
}

func TestHealthz(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestEmployeeRoutes_ListUsesPublicBaseURL(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "email"}).
			AddRow(1, "Alice", "Developer", "alice@example.com"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"href":"http://hr.test/employees/1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRoutes_CreateWritesOutboxInSameTransaction(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`INSERT INTO "outbox_events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/employees",
		strings.NewReader(`{"name":"Bob","role":"Manager","email":"bob@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://hr.test/employees/7", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
