package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/handlers"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/testutil"
)

func TestReady_DatabaseClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	h := handlers.NewHealthHandler(db)

	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/readyz", h.Ready)

	require.NoError(t, dbpkg.Close(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db_unavailable")

	// liveness não depende do banco
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
