package players

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"conspiracy/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlayers struct {
	points   int
	statuses []services.ChallengeStatus
	err      error
}

func (s *stubPlayers) GetPoints(context.Context, int64) (int, error) {
	return s.points, s.err
}

func (s *stubPlayers) Status(context.Context, int64) ([]services.ChallengeStatus, error) {
	return s.statuses, s.err
}

func newTestRouter(p PlayerQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(p))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetPoints(t *testing.T) {
	r := newTestRouter(&stubPlayers{points: 35})

	w := get(r, "/api/v1/players/7/points")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"points":35`)
}

func TestGetPointsRejectsNonNumericID(t *testing.T) {
	r := newTestRouter(&stubPlayers{})

	w := get(r, "/api/v1/players/bob/points")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidUserID)
}

func TestGetStatus(t *testing.T) {
	r := newTestRouter(&stubPlayers{statuses: []services.ChallengeStatus{
		{ChallengeName: "Alpha", Solved: true, Points: 10},
		{ChallengeName: "Beta", Solved: false, Points: 25},
	}})

	w := get(r, "/api/v1/players/7/status")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"challenge_name":"Alpha"`)
	assert.Contains(t, w.Body.String(), `"solved":true`)
	assert.Contains(t, w.Body.String(), `"solved":false`)
}

func TestGetStatusStorageFailureIsGeneric(t *testing.T) {
	r := newTestRouter(&stubPlayers{err: errors.New("pq: relation missing")})

	w := get(r, "/api/v1/players/7/status")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation missing")
}

func TestGetMenu(t *testing.T) {
	r := newTestRouter(&stubPlayers{})

	w := get(r, "/api/v1/menu")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "submit_flag")
	assert.Contains(t, w.Body.String(), "check_points")
	assert.Contains(t, w.Body.String(), "challenge_status")
	assert.Contains(t, w.Body.String(), "leaderboard_url")
}
