package domain

import (
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

// DefaultLeadTimes are the offsets before kickoff at which reminders fire,
// longest first.
var DefaultLeadTimes = []time.Duration{
	7 * time.Hour,
	5 * time.Hour,
	2 * time.Hour,
}

// TrackedCompetitions are the competitions the bot watches.
var TrackedCompetitions = []entity.Competition{
	entity.CompetitionLeague,
	entity.CompetitionChampionsLeague,
}

// DefaultTeamID is FC Barcelona's football-data.org team ID.
const DefaultTeamID = 81

// DefaultTimezone is the display timezone for kickoff times.
const DefaultTimezone = "Asia/Jerusalem"
