package service

import (
	"log"
	"sync"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/blaugranahub/matchday-bot/internal/timeutil"
	"github.com/slack-go/slack"
)

// dispatcher fans a fired reminder out to every current subscriber. The
// subscriber list is snapshotted once per dispatch; channels subscribing
// mid-flight catch the next reminder.
type dispatcher struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	loc         *time.Location
}

func newDispatcher(dm contract.DataManager, slackClient contract.SlackClient, loc *time.Location) *dispatcher {
	return &dispatcher{
		dm:          dm,
		slackClient: slackClient,
		loc:         loc,
	}
}

// Dispatch delivers one reminder to all subscribers concurrently and waits
// for every attempt. A failed delivery is logged and never blocks the
// remaining subscribers; the job stays fired regardless of individual
// outcomes.
func (d *dispatcher) Dispatch(job entity.ReminderJob, fx entity.Fixture) {
	subscribers, err := d.dm.Subscriber().ListAll()
	if err != nil {
		log.Printf("Failed to load subscribers for %s reminder (%s): %v", timeutil.LeadLabel(job.LeadTime), fx.Label(), err)
		return
	}
	if len(subscribers) == 0 {
		log.Printf("No subscribers for %s reminder (%s)", timeutil.LeadLabel(job.LeadTime), fx.Label())
		return
	}

	message := timeutil.ReminderMessage(fx, job.LeadTime, d.loc)

	var wg sync.WaitGroup
	for _, sub := range subscribers {
		wg.Add(1)
		go func(channelID string) {
			defer wg.Done()
			_, _, err := d.slackClient.PostMessage(
				channelID,
				slack.MsgOptionText(message, false),
				slack.MsgOptionAsUser(false),
			)
			if err != nil {
				log.Printf("Failed to deliver reminder to channel %s: %v", channelID, err)
			}
		}(sub.SlackChannelID)
	}
	wg.Wait()

	log.Printf("Dispatched %s reminder for %s to %d subscribers", timeutil.LeadLabel(job.LeadTime), fx.Label(), len(subscribers))
}
