package entity

import (
	"fmt"
	"time"
)

// TeamName is the display name used when building fixture labels.
const TeamName = "FC Barcelona"

// Competition identifies which competition a fixture belongs to.
type Competition string

const (
	CompetitionLeague          Competition = "LEAGUE"
	CompetitionChampionsLeague Competition = "CHAMPIONS_LEAGUE"
)

// Code returns the football-data.org competition code.
func (c Competition) Code() string {
	switch c {
	case CompetitionLeague:
		return "PD"
	case CompetitionChampionsLeague:
		return "CL"
	default:
		return ""
	}
}

// DisplayName returns a human-readable competition name.
func (c Competition) DisplayName() string {
	switch c {
	case CompetitionLeague:
		return "La Liga"
	case CompetitionChampionsLeague:
		return "Champions League"
	default:
		return string(c)
	}
}

// Fixture is a scheduled match as reported by the fixtures source.
// Immutable once fetched; a re-fetch with the same ID supersedes it.
type Fixture struct {
	ID          int64
	Competition Competition
	Kickoff     time.Time // absolute instant, stored in UTC
	Opponent    string
	Home        bool
}

// Label returns the match-up in home-vs-away order.
func (f Fixture) Label() string {
	if f.Home {
		return fmt.Sprintf("%s vs %s", TeamName, f.Opponent)
	}
	return fmt.Sprintf("%s vs %s", f.Opponent, TeamName)
}
