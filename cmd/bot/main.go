package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/blaugranahub/matchday-bot/internal/config"
	"github.com/blaugranahub/matchday-bot/internal/database"
	"github.com/blaugranahub/matchday-bot/internal/domain"
	"github.com/blaugranahub/matchday-bot/internal/domain/service"
	"github.com/blaugranahub/matchday-bot/internal/footballdata"
	"github.com/blaugranahub/matchday-bot/internal/handlers"
	"github.com/blaugranahub/matchday-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)
	slackClient := slack.New(cfg.SlackBotToken)
	fixtureSource := footballdata.NewClient(cfg.FootballAPIBase, cfg.FootballAPIKey, cfg.TeamID, cfg.RequestsPerMinute)

	services := service.NewInstance(dm, slackClient, fixtureSource,
		cfg.LeadTimes, domain.TrackedCompetitions, cfg.Location, cfg.ResyncHour)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(dm, fixtureSource, services.Scheduler, cfg.Location, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	// Keep-alive banner so the hosting platform detects an open port.
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Matchday reminder bot is running!")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
