package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"
	"github.com/cozyGalvinism/webgone/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *storage.Database) {
	t.Helper()

	db, err := storage.InitializeTestDatabase()
	require.NoError(t, err)

	return NewServer("127.0.0.1:0", db), db
}

func doRequest(s *Server, method, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, nil)
	s.router.ServeHTTP(recorder, request)
	return recorder
}

func seedOutage(t *testing.T, db *storage.Database, start time.Time, duration int64) {
	t.Helper()
	outage := models.NewOutage(start, start.Add(time.Duration(duration)*time.Second), duration)
	require.NoError(t, db.Append(&outage))
}

func TestHealthCheckHandler(t *testing.T) {
	server, _ := newTestServer(t)

	recorder := doRequest(server, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}

func TestStatsHandler(t *testing.T) {
	server, db := newTestServer(t)
	seedOutage(t, db, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 300)

	recorder := doRequest(server, http.MethodGet, "/api/outages/stats")
	require.Equal(t, http.StatusOK, recorder.Code)

	var stats models.OutageStats
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalOutages)
	assert.Equal(t, int64(300), stats.TotalDuration)
}

func TestRecentHandlerLimit(t *testing.T) {
	server, db := newTestServer(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedOutage(t, db, base.Add(time.Duration(i)*time.Hour), 60)
	}

	recorder := doRequest(server, http.MethodGet, "/api/outages/recent")
	require.Equal(t, http.StatusOK, recorder.Code)

	var records []models.OutageRecord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &records))
	assert.Len(t, records, 5) // default limit

	recorder = doRequest(server, http.MethodGet, "/api/outages/recent?limit=2")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestMonthlyHandlerEmptyLedger(t *testing.T) {
	server, _ := newTestServer(t)

	recorder := doRequest(server, http.MethodGet, "/api/outages/monthly")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())
}

func TestCostHandlerRequiresRate(t *testing.T) {
	server, _ := newTestServer(t)

	recorder := doRequest(server, http.MethodGet, "/api/outages/cost")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(server, http.MethodGet, "/api/outages/cost?rate=300")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "summary")
}
