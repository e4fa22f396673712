package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

type apiTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apiMatch struct {
	ID          int64  `json:"id"`
	UTCDate     string `json:"utcDate"`
	Competition struct {
		Code string `json:"code"`
	} `json:"competition"`
	HomeTeam apiTeam `json:"homeTeam"`
	AwayTeam apiTeam `json:"awayTeam"`
}

type matchesResponse struct {
	Matches []apiMatch `json:"matches"`
}

// ListUpcoming fetches the team's scheduled matches for one competition.
func (c *Client) ListUpcoming(ctx context.Context, competition entity.Competition) ([]entity.Fixture, error) {
	body, err := c.get(ctx, fmt.Sprintf("/v4/teams/%d/matches", c.teamID), url.Values{
		"status":       {"SCHEDULED"},
		"competitions": {competition.Code()},
	})
	if err != nil {
		return nil, err
	}

	var resp matchesResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	fixtures := make([]entity.Fixture, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		kickoff, err := time.Parse(time.RFC3339, m.UTCDate)
		if err != nil {
			return nil, fmt.Errorf("%w: match %d has bad utcDate %q: %v", ErrSourceUnavailable, m.ID, m.UTCDate, err)
		}

		home := m.HomeTeam.ID == int64(c.teamID)
		opponent := m.HomeTeam.Name
		if home {
			opponent = m.AwayTeam.Name
		}

		fixtures = append(fixtures, entity.Fixture{
			ID:          m.ID,
			Competition: competition,
			Kickoff:     kickoff.UTC(),
			Opponent:    opponent,
			Home:        home,
		})
	}

	return fixtures, nil
}
