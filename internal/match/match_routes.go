package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/juanedi/fifatum/internal/middleware"
)

// RegisterMatchRoutes sets up stats, history and reporting routes.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewGormMatchRepository(db)
	controller := NewMatchController(repo)

	authed := router.Group("/")
	authed.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authed.GET("/ranking", controller.GetRanking)
		authed.GET("/stats", controller.GetStats)
		authed.GET("/history/user", controller.GetUserHistory)
		authed.GET("/teams/recent", controller.GetRecentTeams)
		authed.POST("/matches", controller.ReportMatch)
	}
}
