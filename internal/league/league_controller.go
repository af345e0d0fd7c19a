package league

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juanedi/fifatum/pkg/responses"
)

// LeagueController serves roster data for team pickers.
type LeagueController struct {
	repo LeagueRepository
}

func NewLeagueController(repo LeagueRepository) *LeagueController {
	return &LeagueController{repo: repo}
}

// GetLeagues godoc
// @Summary      List leagues
// @Description  Returns every league with its team roster.
// @Tags         Leagues
// @Produce      json
// @Success      200 {array} LeagueJSON
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /leagues [get]
func (lc *LeagueController) GetLeagues(c *gin.Context) {
	leagues, err := lc.repo.GetAllLeagues()
	if err != nil {
		log.Printf("leagues: failed to load: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	payload := make([]LeagueJSON, 0, len(leagues))
	for i := range leagues {
		payload = append(payload, leagues[i].APIJSON())
	}
	c.JSON(http.StatusOK, payload)
}
