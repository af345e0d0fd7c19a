package league

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/juanedi/fifatum/internal/middleware"
)

// RegisterLeagueRoutes sets up roster-related routes.
func RegisterLeagueRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewLeagueRepository(db)
	controller := NewLeagueController(repo)

	leagues := router.Group("/leagues")
	leagues.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		leagues.GET("", controller.GetLeagues)
	}
}
