package contract

import (
	"context"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Subscriber() SubscriberRepo
}

// SubscriberRepo defines the contract for the subscriber store.
// Add and Remove are idempotent: adding an existing channel or removing a
// missing one is a no-op.
type SubscriberRepo interface {
	Add(subscriber *entity.Subscriber) error
	Remove(slackChannelID string) error
	GetByChannelID(slackChannelID string) (*entity.Subscriber, error)
	ListAll() ([]*entity.Subscriber, error)
}
