package league

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLeagueRepo struct {
	leagues []League
	err     error
}

func (f *fakeLeagueRepo) GetAllLeagues() ([]League, error)         { return f.leagues, f.err }
func (f *fakeLeagueRepo) FindLeagueByName(string) (*League, error) { return nil, nil }
func (f *fakeLeagueRepo) CreateLeague(*League) error               { return nil }
func (f *fakeLeagueRepo) CreateTeam(*Team) error                   { return nil }
func (f *fakeLeagueRepo) GetTeamByID(uint) (*Team, error)          { return nil, nil }

func newTestRouter(repo LeagueRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/leagues", NewLeagueController(repo).GetLeagues)
	return r
}

func TestGetLeagues(t *testing.T) {
	repo := &fakeLeagueRepo{
		leagues: []League{
			{
				Model: gorm.Model{ID: 1},
				Name:  "The League",
				Teams: []Team{
					{Model: gorm.Model{ID: 10}, Name: "Team 1", LeagueID: 1},
					{Model: gorm.Model{ID: 11}, Name: "Team 2", LeagueID: 1},
				},
			},
		},
	}
	r := newTestRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leagues", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"The League","teams":[
			{"id":10,"name":"Team 1"},
			{"id":11,"name":"Team 2"}
		]}
	]`, w.Body.String())
}

func TestGetLeaguesEmpty(t *testing.T) {
	r := newTestRouter(&fakeLeagueRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leagues", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetLeaguesStoreFailure(t *testing.T) {
	r := newTestRouter(&fakeLeagueRepo{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leagues", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
