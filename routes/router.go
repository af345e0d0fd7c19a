package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/juanedi/fifatum/config"
	"github.com/juanedi/fifatum/internal/auth"
	"github.com/juanedi/fifatum/internal/league"
	"github.com/juanedi/fifatum/internal/match"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig.JWT.AccessTokenSecret)
	league.RegisterLeagueRoutes(api, db, appConfig.JWT.AccessTokenSecret)

	return r
}
