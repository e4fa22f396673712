package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	FootballAPIKey     string
	FootballAPIBase    string
	TeamID             int
	Timezone           string
	Location           *time.Location
	LeadTimes          []time.Duration
	ResyncHour         int
	RequestsPerMinute  int
	DatabasePath       string
	Port               string
}

// Load reads configuration from environment variables and validates it.
// A bad timezone, lead-time list or resync hour is a startup error, never a
// runtime one.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		FootballAPIKey:     getEnv("FOOTBALL_API_KEY", ""),
		FootballAPIBase:    getEnv("FOOTBALL_API_BASE", "https://api.football-data.org"),
		Timezone:           getEnv("TIMEZONE", domain.DefaultTimezone),
		DatabasePath:       getEnv("DATABASE_PATH", "./matchday.db"),
		Port:               getEnv("PORT", "3000"),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN must be set")
	}
	if cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("SLACK_SIGNING_SECRET must be set")
	}
	if cfg.FootballAPIKey == "" {
		return nil, fmt.Errorf("FOOTBALL_API_KEY must be set")
	}

	var err error
	if cfg.TeamID, err = getEnvInt("TEAM_ID", domain.DefaultTeamID); err != nil {
		return nil, err
	}
	if cfg.ResyncHour, err = getEnvInt("RESYNC_HOUR", 0); err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute, err = getEnvInt("FOOTBALL_API_RPM", 8); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	leadTimes, err := parseLeadTimes(getEnv("LEAD_TIME_HOURS", ""))
	if err != nil {
		return nil, err
	}
	cfg.LeadTimes = leadTimes

	if cfg.ResyncHour < 0 || cfg.ResyncHour > 23 {
		return nil, fmt.Errorf("RESYNC_HOUR must be between 0 and 23, got %d", cfg.ResyncHour)
	}
	if cfg.RequestsPerMinute < 1 {
		return nil, fmt.Errorf("FOOTBALL_API_RPM must be positive, got %d", cfg.RequestsPerMinute)
	}

	return cfg, nil
}

// parseLeadTimes parses a comma-separated hour list like "7,5,2".
// Empty input falls back to the default lead times.
func parseLeadTimes(raw string) ([]time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.DefaultLeadTimes, nil
	}

	seen := make(map[time.Duration]bool)
	var leadTimes []time.Duration
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		hours, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid LEAD_TIME_HOURS entry %q: %w", part, err)
		}
		if hours <= 0 {
			return nil, fmt.Errorf("LEAD_TIME_HOURS entries must be positive, got %d", hours)
		}
		d := time.Duration(hours) * time.Hour
		if seen[d] {
			continue
		}
		seen[d] = true
		leadTimes = append(leadTimes, d)
	}
	return leadTimes, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
