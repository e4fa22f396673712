package service

import (
	"sort"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

// PlanReminders computes the reminder jobs for a fixture set: one job per
// (fixture, lead time) pair whose fire instant is still in the future.
// A fixture whose kickoff is closer than the shortest lead time simply
// yields fewer (or zero) jobs.
//
// The output is deterministic for identical inputs and never contains two
// jobs with the same key. It replaces the scheduler's pending set on each
// resync rather than being merged into it, so postponed or cancelled
// fixtures naturally drop their stale jobs.
func PlanReminders(fixtures []entity.Fixture, leadTimes []time.Duration, now time.Time) []entity.ReminderJob {
	seen := make(map[entity.JobKey]bool)
	var jobs []entity.ReminderJob

	for _, fx := range fixtures {
		for _, lead := range leadTimes {
			fireAt := fx.Kickoff.Add(-lead)
			if !fireAt.After(now) {
				continue
			}

			key := entity.JobKey{FixtureID: fx.ID, LeadTime: lead}
			if seen[key] {
				continue
			}
			seen[key] = true

			jobs = append(jobs, entity.ReminderJob{
				FixtureID: fx.ID,
				LeadTime:  lead,
				FireAt:    fireAt,
				Status:    entity.JobPending,
			})
		}
	}

	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].FireAt.Equal(jobs[j].FireAt) {
			return jobs[i].FireAt.Before(jobs[j].FireAt)
		}
		if jobs[i].FixtureID != jobs[j].FixtureID {
			return jobs[i].FixtureID < jobs[j].FixtureID
		}
		return jobs[i].LeadTime < jobs[j].LeadTime
	})

	return jobs
}
