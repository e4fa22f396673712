package database

import (
	"testing"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRepo_AddAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepo(db.conn)

	subscriber := &entity.Subscriber{
		SlackChannelID: "C123456789",
		SlackTeamID:    "T123456789",
	}

	err := repo.Add(subscriber)
	require.NoError(t, err)
	assert.NotZero(t, subscriber.ID)

	got, err := repo.GetByChannelID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "C123456789", got.SlackChannelID)
	assert.Equal(t, "T123456789", got.SlackTeamID)
	assert.False(t, got.SubscribedAt.IsZero())
}

func TestSubscriberRepo_AddIsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepo(db.conn)

	err := repo.Add(&entity.Subscriber{SlackChannelID: "C123456789"})
	require.NoError(t, err)

	// Adding the same channel again must be a no-op, not an error.
	err = repo.Add(&entity.Subscriber{SlackChannelID: "C123456789"})
	require.NoError(t, err)

	subscribers, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)
}

func TestSubscriberRepo_GetMissingReturnsNil(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepo(db.conn)

	got, err := repo.GetByChannelID("C000000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubscriberRepo_Remove(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepo(db.conn)

	require.NoError(t, repo.Add(&entity.Subscriber{SlackChannelID: "C123456789"}))
	require.NoError(t, repo.Remove("C123456789"))

	subscribers, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, subscribers)

	// Removing a channel that was never subscribed is a no-op.
	require.NoError(t, repo.Remove("C000000000"))
}

func TestSubscriberRepo_ListAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepo(db.conn)

	channels := []string{"C111111111", "C222222222", "C333333333"}
	for _, id := range channels {
		require.NoError(t, repo.Add(&entity.Subscriber{SlackChannelID: id}))
	}

	subscribers, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, subscribers, 3)

	got := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		got = append(got, s.SlackChannelID)
	}
	assert.Equal(t, channels, got, "insertion order is preserved for same-second subscriptions")
}
