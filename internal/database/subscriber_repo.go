package database

import (
	"database/sql"
	"fmt"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

type subscriberRepo struct {
	db dbConn
}

func newSubscriberRepo(db dbConn) contract.SubscriberRepo {
	return &subscriberRepo{db: db}
}

// Add registers a channel as a subscriber. Adding an already-subscribed
// channel is a no-op.
func (r *subscriberRepo) Add(subscriber *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (slack_channel_id, slack_team_id)
		VALUES (?, ?)
		ON CONFLICT(slack_channel_id) DO NOTHING
	`

	result, err := r.db.Exec(query,
		subscriber.SlackChannelID,
		subscriber.SlackTeamID,
	)
	if err != nil {
		return fmt.Errorf("failed to add subscriber: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		// Already subscribed
		return nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	subscriber.ID = id
	return nil
}

// Remove unsubscribes a channel. Removing a missing channel is a no-op.
func (r *subscriberRepo) Remove(slackChannelID string) error {
	query := `DELETE FROM subscribers WHERE slack_channel_id = ?`

	_, err := r.db.Exec(query, slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to remove subscriber: %w", err)
	}

	return nil
}

func (r *subscriberRepo) GetByChannelID(slackChannelID string) (*entity.Subscriber, error) {
	subscriber := &entity.Subscriber{}
	query := `
		SELECT id, slack_channel_id, slack_team_id, subscribed_at
		FROM subscribers
		WHERE slack_channel_id = ?
	`

	err := r.db.QueryRow(query, slackChannelID).Scan(
		&subscriber.ID,
		&subscriber.SlackChannelID,
		&subscriber.SlackTeamID,
		&subscriber.SubscribedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	return subscriber, nil
}

func (r *subscriberRepo) ListAll() ([]*entity.Subscriber, error) {
	query := `
		SELECT id, slack_channel_id, slack_team_id, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at ASC, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*entity.Subscriber
	for rows.Next() {
		subscriber := &entity.Subscriber{}
		err := rows.Scan(
			&subscriber.ID,
			&subscriber.SlackChannelID,
			&subscriber.SlackTeamID,
			&subscriber.SubscribedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers, rows.Err()
}
