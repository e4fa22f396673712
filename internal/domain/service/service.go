package service

import (
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

type Instance struct {
	Scheduler contract.ReminderScheduler
}

func NewInstance(
	dm contract.DataManager,
	slackClient contract.SlackClient,
	source contract.FixtureSource,
	leadTimes []time.Duration,
	competitions []entity.Competition,
	loc *time.Location,
	resyncHour int,
) *Instance {
	d := newDispatcher(dm, slackClient, loc)

	return &Instance{
		Scheduler: newScheduler(dm, source, d, leadTimes, competitions, loc, resyncHour),
	}
}
