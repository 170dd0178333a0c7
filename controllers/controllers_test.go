package controllers_test

import (
	"sync"
	"testing"

	"failfund/config"
	"failfund/routes"
	"failfund/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mock, _ := setupRecordingMockDB(t)
	return mock
}

// sqlRecorder keeps every statement the driver sees, so tests can assert on
// the generated SQL itself.
type sqlRecorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *sqlRecorder) Match(expected, actual string) error {
	r.mu.Lock()
	r.queries = append(r.queries, actual)
	r.mu.Unlock()
	return sqlmock.QueryMatcherRegexp.Match(expected, actual)
}

func (r *sqlRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func setupRecordingMockDB(t *testing.T) (sqlmock.Sqlmock, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	config.DB = gdb
	config.RedisClient = nil
	return mock, recorder
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func bearerToken(t *testing.T, userID uint, email string) string {
	t.Helper()
	token, err := services.GenerateToken(services.UserInfo{UserID: userID, Email: email})
	require.NoError(t, err)
	return "Bearer " + token
}
