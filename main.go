package main

import (
	"flag"
	"log"

	"github.com/juanedi/fifatum/config"
	_ "github.com/juanedi/fifatum/docs"
	"github.com/juanedi/fifatum/internal/league"
	"github.com/juanedi/fifatum/internal/match"
	"github.com/juanedi/fifatum/internal/roster"
	"github.com/juanedi/fifatum/internal/user"
	"github.com/juanedi/fifatum/routes"
)

// @title Fifatum API
// @version 1.0
// @description Head-to-head match tracking: history, per-rival stats and team rosters.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	importFile := flag.String("import-teams", "", "import a roster JSON file into the database and exit")
	scrapeFile := flag.String("scrape-teams", "", "scrape the EA leagues page into the given JSON file and exit")
	flag.Parse()

	if *scrapeFile != "" {
		if err := roster.Scrape(*scrapeFile); err != nil {
			log.Fatalf("Scrape failed: %v", err)
		}
		log.Printf("Roster written to %s", *scrapeFile)
		return
	}

	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&league.League{}, &league.Team{},
		&match.Match{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if *importFile != "" {
		if err := roster.ImportFile(league.NewLeagueRepository(config.DB), *importFile); err != nil {
			log.Fatalf("Roster import failed: %v", err)
		}
		log.Println("Roster import successful")
		return
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
