package database

import (
	"context"
	"errors"
	"testing"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(txDM contract.DataManager) error {
		return txDM.Subscriber().Add(&entity.Subscriber{SlackChannelID: "C111111111"})
	})
	require.NoError(t, err)

	got, err := dm.Subscriber().GetByChannelID("C111111111")
	require.NoError(t, err)
	assert.NotNil(t, got, "committed insert must be visible outside the transaction")
}

func TestInstance_WithTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	wantErr := errors.New("subscription rejected")
	err := dm.WithTransaction(context.Background(), func(txDM contract.DataManager) error {
		if err := txDM.Subscriber().Add(&entity.Subscriber{SlackChannelID: "C222222222"}); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	got, err := dm.Subscriber().GetByChannelID("C222222222")
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back insert must not be visible")
}

func TestInstance_WithTransaction_CheckThenAdd(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	require.NoError(t, dm.Subscriber().Add(&entity.Subscriber{SlackChannelID: "C333333333"}))

	// The subscribe flow reads and inserts in one transaction; an existing
	// row short-circuits the insert.
	var alreadySubscribed bool
	err := dm.WithTransaction(context.Background(), func(txDM contract.DataManager) error {
		existing, err := txDM.Subscriber().GetByChannelID("C333333333")
		if err != nil {
			return err
		}
		if existing != nil {
			alreadySubscribed = true
			return nil
		}
		return txDM.Subscriber().Add(&entity.Subscriber{SlackChannelID: "C333333333"})
	})
	require.NoError(t, err)
	assert.True(t, alreadySubscribed)

	subscribers, err := dm.Subscriber().ListAll()
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)
}
