package match

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/juanedi/fifatum/internal/middleware"
	"github.com/juanedi/fifatum/pkg/responses"
)

// MatchController handles stats, history and match reporting.
type MatchController struct {
	repo MatchRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// ReportMatchRequest is the payload for recording a result. Goal counts are
// pointers so that a 0-0 draw still passes the required bindings.
type ReportMatchRequest struct {
	RivalID     uint `json:"rival_id" binding:"required"`
	OwnGoals    *int `json:"own_goals" binding:"required"`
	RivalGoals  *int `json:"rival_goals" binding:"required"`
	OwnTeamID   uint `json:"own_team_id" binding:"required"`
	RivalTeamID uint `json:"rival_team_id" binding:"required"`
}

// GetStats godoc
// @Summary      Match statistics
// @Description  Returns the authenticated user's recent matches and per-rival totals.
// @Tags         Stats
// @Produce      json
// @Success      200 {object} StatsJSON
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /stats [get]
func (mc *MatchController) GetStats(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	matches, err := mc.repo.MatchesInvolving(userID)
	if err != nil {
		log.Printf("stats: failed to load matches for user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	recent, err := HistoryOf(matches, userID, DefaultHistorySize, true)
	if err != nil {
		// The store returned a match the user is not part of. Fail loudly,
		// never skip it.
		log.Printf("stats: user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	versus, err := VersusOf(matches, userID)
	if err != nil {
		log.Printf("stats: user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, StatsJSON{RecentMatches: recent, Versus: versus})
}

// GetUserHistory godoc
// @Summary      Match history
// @Description  Returns the authenticated user's most recent matches, newest first.
// @Tags         Stats
// @Produce      json
// @Success      200 {array} MatchJSON
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /history/user [get]
func (mc *MatchController) GetUserHistory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	matches, err := mc.repo.MatchesInvolving(userID)
	if err != nil {
		log.Printf("history: failed to load matches for user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	history, err := HistoryOf(matches, userID, DefaultHistorySize, false)
	if err != nil {
		log.Printf("history: user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetRecentTeams godoc
// @Summary      Recently used teams
// @Description  Returns the distinct teams the user fielded last, most recent first.
// @Tags         Stats
// @Produce      json
// @Param        count query int false "Maximum number of teams" default(5)
// @Success      200 {array} league.TeamJSON
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /teams/recent [get]
func (mc *MatchController) GetRecentTeams(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(DefaultRecentTeamCount)))
	if err != nil || count < 1 {
		count = DefaultRecentTeamCount
	}

	matches, err := mc.repo.MatchesInvolving(userID)
	if err != nil {
		log.Printf("recent teams: failed to load matches for user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	teams, err := RecentTeamsOf(matches, userID, count)
	if err != nil {
		log.Printf("recent teams: user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ReportMatch godoc
// @Summary      Report a match result
// @Description  Records one head-to-head result for the authenticated user.
// @Tags         Matches
// @Accept       json
// @Param        result body ReportMatchRequest true "Match result"
// @Success      204 "Result recorded"
// @Failure      401 {object} responses.ErrorResponse
// @Failure      422 "Validation failed"
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /matches [post]
func (mc *MatchController) ReportMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	var req ReportMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	// Validation order matters: self-play first, then goal signs. Any
	// failure means no record is written.
	if req.RivalID == userID {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	if *req.OwnGoals < 0 || *req.RivalGoals < 0 {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	m := Match{
		User1ID:     userID,
		User1TeamID: req.OwnTeamID,
		User1Goals:  *req.OwnGoals,
		User2ID:     req.RivalID,
		User2TeamID: req.RivalTeamID,
		User2Goals:  *req.RivalGoals,
	}
	if err := mc.repo.CreateMatch(&m); err != nil {
		log.Printf("report: failed to create match for user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRanking godoc
// @Summary      Player ranking
// @Description  Returns the current ranking.
// @Tags         Stats
// @Produce      json
// @Success      200 {array} map[string]string
// @Security     BearerAuth
// @Router       /ranking [get]
func (mc *MatchController) GetRanking(c *gin.Context) {
	// TODO: replace placeholder payload with a real ranking algorithm.
	c.JSON(http.StatusOK, []gin.H{
		{"name": "Player 1", "lastMatch": "2016-11-15"},
		{"name": "Player 2", "lastMatch": "2016-11-19"},
		{"name": "Player 3", "lastMatch": "2016-11-18"},
	})
}
