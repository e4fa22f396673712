// Package timeutil converts kickoff instants into the configured display
// timezone and builds the reminder message text. Conversion follows the
// zone's IANA offset rules, so daylight-saving transitions resolve to valid
// local times without guessing.
package timeutil

import (
	"fmt"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

const kickoffFormat = "Mon, 02 Jan 2006 15:04 MST"

// ToZone converts an instant to the display timezone.
func ToZone(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// FormatKickoff renders a kickoff instant in the display timezone.
func FormatKickoff(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(kickoffFormat)
}

// LeadLabel renders a lead time as a human phrase, e.g. "2 hours".
func LeadLabel(d time.Duration) string {
	hours := int(d / time.Hour)
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

// ReminderMessage builds the notification text for a reminder job.
func ReminderMessage(fx entity.Fixture, leadTime time.Duration, loc *time.Location) string {
	return fmt.Sprintf("⚽ Reminder: %s kicks off in %s — %s (%s)",
		fx.Label(), LeadLabel(leadTime), FormatKickoff(fx.Kickoff, loc), fx.Competition.DisplayName())
}
