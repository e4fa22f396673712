package contract

import "github.com/slack-go/slack"

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack.go -package=mocks

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
