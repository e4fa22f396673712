package contract

import "github.com/blaugranahub/matchday-bot/internal/domain/entity"

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

// ReminderScheduler is the command surface the chat layer uses to talk to
// the scheduling engine.
type ReminderScheduler interface {
	Start()
	Stop()

	// RequestResync asks the engine to re-fetch fixtures and rebuild the
	// reminder plan. Non-blocking.
	RequestResync()

	// UpcomingFixtures returns the fixtures currently known to the engine,
	// soonest kickoff first.
	UpcomingFixtures() []entity.Fixture

	// PendingJobs returns a snapshot of the jobs still waiting to fire,
	// earliest first.
	PendingJobs() []entity.ReminderJob
}
