package service

import (
	"testing"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanReminders(t *testing.T) {
	kickoff := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	fixture := entity.Fixture{
		ID:          100,
		Competition: entity.CompetitionLeague,
		Kickoff:     kickoff,
		Opponent:    "Real Madrid",
		Home:        true,
	}

	type args struct {
		fixtures  []entity.Fixture
		leadTimes []time.Duration
		now       time.Time
	}
	tests := []struct {
		name        string
		args        args
		wantFireAts []time.Time
	}{
		{
			name: "Should plan all three reminders for a match later today",
			args: args{
				fixtures:  []entity.Fixture{fixture},
				leadTimes: testLeadTimes,
				now:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
			wantFireAts: []time.Time{
				time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Should plan nothing when every lead time has passed",
			args: args{
				fixtures:  []entity.Fixture{fixture},
				leadTimes: testLeadTimes,
				now:       time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
			},
			wantFireAts: nil,
		},
		{
			name: "Should drop only the lead times already in the past",
			args: args{
				fixtures:  []entity.Fixture{fixture},
				leadTimes: testLeadTimes,
				now:       time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			},
			wantFireAts: []time.Time{
				time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Should yield zero jobs for a kickoff closer than the shortest lead time",
			args: args{
				fixtures:  []entity.Fixture{fixture},
				leadTimes: testLeadTimes,
				now:       kickoff.Add(-1 * time.Hour),
			},
			wantFireAts: nil,
		},
		{
			name: "Should handle an empty fixture set",
			args: args{
				fixtures:  nil,
				leadTimes: testLeadTimes,
				now:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
			wantFireAts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanReminders(tt.args.fixtures, tt.args.leadTimes, tt.args.now)

			require.Len(t, got, len(tt.wantFireAts))
			for i, job := range got {
				assert.Equal(t, tt.wantFireAts[i], job.FireAt)
				assert.Equal(t, entity.JobPending, job.Status)
				assert.Equal(t, fixture.Kickoff, job.FireAt.Add(job.LeadTime), "fire instant must be kickoff minus lead time")
			}
		})
	}
}

func TestPlanReminders_NoDuplicateKeys(t *testing.T) {
	kickoff := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	fixture := entity.Fixture{ID: 100, Kickoff: kickoff, Opponent: "Girona"}
	now := time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)

	// Duplicate fixtures and duplicate lead times must collapse to one job
	// per (fixture, lead time) pair.
	fixtures := []entity.Fixture{fixture, fixture}
	leadTimes := []time.Duration{7 * time.Hour, 7 * time.Hour, 2 * time.Hour}

	got := PlanReminders(fixtures, leadTimes, now)

	require.Len(t, got, 2)
	seen := make(map[entity.JobKey]bool)
	for _, job := range got {
		assert.False(t, seen[job.Key()], "duplicate job key %v", job.Key())
		seen[job.Key()] = true
	}
}

func TestPlanReminders_Deterministic(t *testing.T) {
	now := time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)
	fixtures := []entity.Fixture{
		{ID: 2, Kickoff: now.Add(30 * time.Hour), Opponent: "Sevilla"},
		{ID: 1, Kickoff: now.Add(20 * time.Hour), Opponent: "Getafe"},
		{ID: 3, Kickoff: now.Add(20 * time.Hour), Opponent: "Valencia"},
	}

	first := PlanReminders(fixtures, testLeadTimes, now)
	second := PlanReminders(fixtures, testLeadTimes, now)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.False(t, first[i].FireAt.Before(first[i-1].FireAt), "output must be ordered by fire instant")
	}
}
