package entity

import "time"

// Subscriber is an opted-in reminder recipient, keyed by Slack channel.
type Subscriber struct {
	ID             int64
	SlackChannelID string
	SlackTeamID    string
	SubscribedAt   time.Time
}
