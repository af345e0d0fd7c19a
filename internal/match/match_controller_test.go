package match

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanedi/fifatum/internal/middleware"
)

type fakeMatchRepo struct {
	matches []Match
	created []Match
	err     error
}

func (f *fakeMatchRepo) MatchesInvolving(userID uint) ([]Match, error) {
	return f.matches, f.err
}

func (f *fakeMatchRepo) CreateMatch(m *Match) error {
	if f.err != nil {
		return f.err
	}
	m.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *m)
	return nil
}

// newTestRouter wires the controller behind a stub that injects the
// authenticated user id, bypassing the JWT middleware.
func newTestRouter(repo MatchRepository, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
	})

	controller := NewMatchController(repo)
	r.GET("/ranking", controller.GetRanking)
	r.GET("/stats", controller.GetStats)
	r.GET("/history/user", controller.GetUserHistory)
	r.GET("/teams/recent", controller.GetRecentTeams)
	r.POST("/matches", controller.ReportMatch)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStatsPayloadShape(t *testing.T) {
	a := testUser(1, "John")
	b := testUser(2, "Mike")
	t1 := testTeam(10, "Team 1")
	t2 := testTeam(20, "Team 2")

	at := time.Date(2016, 11, 19, 22, 0, 0, 0, time.UTC)
	repo := &fakeMatchRepo{matches: []Match{testMatch(1, at, a, t1, 3, b, t2, 1)}}
	r := newTestRouter(repo, a.ID)

	w := performRequest(r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		RecentMatches []struct {
			ID    uint  `json:"id"`
			Date  int64 `json:"date"`
			User1 struct {
				ID    uint   `json:"id"`
				Name  string `json:"name"`
				Goals int    `json:"goals"`
				Team  struct {
					ID   uint   `json:"id"`
					Name string `json:"name"`
				} `json:"team"`
			} `json:"user1"`
		} `json:"recentMatches"`
		Versus []VersusJSON `json:"versus"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	require.Len(t, payload.RecentMatches, 1)
	assert.Equal(t, at.Unix(), payload.RecentMatches[0].Date)
	assert.Equal(t, "John", payload.RecentMatches[0].User1.Name)
	assert.Equal(t, "Team 1", payload.RecentMatches[0].User1.Team.Name)
	assert.Equal(t, 3, payload.RecentMatches[0].User1.Goals)

	require.Len(t, payload.Versus, 1)
	assert.Equal(t, VersusJSON{RivalName: "Mike", Won: 1, GoalsMade: 3, GoalsReceived: 1}, payload.Versus[0])
}

func TestGetStatsEmptyHistory(t *testing.T) {
	r := newTestRouter(&fakeMatchRepo{}, 1)

	w := performRequest(r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recentMatches":[],"versus":[]}`, w.Body.String())
}

func TestGetStatsForeignMatchIsServerError(t *testing.T) {
	foreign := testMatch(1, time.Now(),
		testUser(5, "X"), testTeam(10, "T1"), 1,
		testUser(6, "Y"), testTeam(20, "T2"), 0,
	)
	r := newTestRouter(&fakeMatchRepo{matches: []Match{foreign}}, 1)

	w := performRequest(r, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUserHistoryOmitsDate(t *testing.T) {
	a := testUser(1, "John")
	b := testUser(2, "Mike")
	m := testMatch(1, time.Now(), a, testTeam(10, "T1"), 2, b, testTeam(20, "T2"), 2)
	r := newTestRouter(&fakeMatchRepo{matches: []Match{m}}, a.ID)

	w := performRequest(r, http.MethodGet, "/history/user", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "date")
}

func TestGetRecentTeamsUsesCountParam(t *testing.T) {
	a := testUser(1, "A")
	b := testUser(2, "B")
	rivalTeam := testTeam(99, "Rival FC")

	at := time.Date(2016, 11, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		testMatch(1, at, a, testTeam(10, "T1"), 1, b, rivalTeam, 0),
		testMatch(2, at.Add(time.Hour), a, testTeam(20, "T2"), 1, b, rivalTeam, 0),
		testMatch(3, at.Add(2*time.Hour), a, testTeam(30, "T3"), 1, b, rivalTeam, 0),
	}
	r := newTestRouter(&fakeMatchRepo{matches: matches}, a.ID)

	w := performRequest(r, http.MethodGet, "/teams/recent?count=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":30,"name":"T3"},{"id":20,"name":"T2"}]`, w.Body.String())
}

func TestReportMatchCreatesRecord(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := newTestRouter(repo, 1)

	w := performRequest(r, http.MethodPost, "/matches",
		`{"rival_id":2,"own_goals":3,"rival_goals":1,"own_team_id":10,"rival_team_id":20}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	require.Len(t, repo.created, 1)
	m := repo.created[0]
	assert.Equal(t, uint(1), m.User1ID)
	assert.Equal(t, uint(10), m.User1TeamID)
	assert.Equal(t, 3, m.User1Goals)
	assert.Equal(t, uint(2), m.User2ID)
	assert.Equal(t, uint(20), m.User2TeamID)
	assert.Equal(t, 1, m.User2Goals)
}

func TestReportMatchAllowsZeroGoals(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := newTestRouter(repo, 1)

	w := performRequest(r, http.MethodPost, "/matches",
		`{"rival_id":2,"own_goals":0,"rival_goals":0,"own_team_id":10,"rival_team_id":20}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 0, repo.created[0].User1Goals)
	assert.Equal(t, 0, repo.created[0].User2Goals)
}

func TestReportMatchRejectsSelfPlay(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := newTestRouter(repo, 1)

	w := performRequest(r, http.MethodPost, "/matches",
		`{"rival_id":1,"own_goals":3,"rival_goals":1,"own_team_id":10,"rival_team_id":20}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, repo.created)
}

func TestReportMatchRejectsNegativeGoals(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := newTestRouter(repo, 1)

	for _, body := range []string{
		`{"rival_id":2,"own_goals":-1,"rival_goals":1,"own_team_id":10,"rival_team_id":20}`,
		`{"rival_id":2,"own_goals":1,"rival_goals":-1,"own_team_id":10,"rival_team_id":20}`,
	} {
		w := performRequest(r, http.MethodPost, "/matches", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, w.Body.String())
	}
	assert.Empty(t, repo.created)
}

func TestReportMatchRejectsMissingFields(t *testing.T) {
	repo := &fakeMatchRepo{}
	r := newTestRouter(repo, 1)

	w := performRequest(r, http.MethodPost, "/matches", `{"rival_id":2}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, repo.created)
}

func TestReportMatchStoreFailure(t *testing.T) {
	repo := &fakeMatchRepo{err: errors.New("connection refused")}
	r := newTestRouter(repo, 1)

	// Reads fail too, but reporting is the write path we care about here.
	w := performRequest(r, http.MethodPost, "/matches",
		`{"rival_id":2,"own_goals":3,"rival_goals":1,"own_team_id":10,"rival_team_id":20}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, repo.created)
}

func TestGetRankingStub(t *testing.T) {
	r := newTestRouter(&fakeMatchRepo{}, 1)

	w := performRequest(r, http.MethodGet, "/ranking", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name":"Player 1","lastMatch":"2016-11-15"},
		{"name":"Player 2","lastMatch":"2016-11-19"},
		{"name":"Player 3","lastMatch":"2016-11-18"}
	]`, w.Body.String())
}
