package timeutil

import (
	"testing"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jerusalem(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	return loc
}

func TestToZone(t *testing.T) {
	loc := jerusalem(t)

	// Summer: Israel is UTC+3 (IDT).
	summer := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	got := ToZone(summer, loc)
	assert.Equal(t, 22, got.Hour())
	assert.True(t, got.Equal(summer), "conversion must not move the instant")

	// Winter: Israel is UTC+2 (IST).
	winter := time.Date(2024, 1, 10, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, 21, ToZone(winter, loc).Hour())
}

func TestToZone_SpringForwardGap(t *testing.T) {
	loc := jerusalem(t)

	// Israel sprang forward on 2024-03-29: 02:00 IST jumped to 03:00 IDT.
	// An instant inside the skipped hour must resolve to a valid IDT time.
	inGap := time.Date(2024, 3, 29, 0, 30, 0, 0, time.UTC)
	got := ToZone(inGap, loc)

	assert.Equal(t, 3, got.Hour())
	assert.Equal(t, 30, got.Minute())
	zone, offset := got.Zone()
	assert.Equal(t, "IDT", zone)
	assert.Equal(t, 3*60*60, offset)
}

func TestFormatKickoff(t *testing.T) {
	loc := jerusalem(t)
	kickoff := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)

	assert.Equal(t, "Wed, 01 May 2024 22:00 IDT", FormatKickoff(kickoff, loc))
}

func TestLeadLabel(t *testing.T) {
	assert.Equal(t, "1 hour", LeadLabel(time.Hour))
	assert.Equal(t, "2 hours", LeadLabel(2*time.Hour))
	assert.Equal(t, "7 hours", LeadLabel(7*time.Hour))
}

func TestReminderMessage(t *testing.T) {
	loc := jerusalem(t)
	fx := entity.Fixture{
		ID:          100,
		Competition: entity.CompetitionLeague,
		Kickoff:     time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
		Opponent:    "Real Madrid",
		Home:        true,
	}

	got := ReminderMessage(fx, 2*time.Hour, loc)

	assert.Contains(t, got, "FC Barcelona vs Real Madrid")
	assert.Contains(t, got, "kicks off in 2 hours")
	assert.Contains(t, got, "Wed, 01 May 2024 22:00 IDT")
	assert.Contains(t, got, "La Liga")

	// Away fixture flips the label order.
	fx.Home = false
	assert.Contains(t, ReminderMessage(fx, 5*time.Hour, loc), "Real Madrid vs FC Barcelona")
}
