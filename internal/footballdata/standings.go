package footballdata

import (
	"context"
	"fmt"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

type standingsResponse struct {
	Standings []struct {
		Type  string `json:"type"`
		Table []struct {
			Position int `json:"position"`
			Team     struct {
				Name string `json:"name"`
			} `json:"team"`
			PlayedGames    int `json:"playedGames"`
			Won            int `json:"won"`
			Draw           int `json:"draw"`
			Lost           int `json:"lost"`
			GoalDifference int `json:"goalDifference"`
			Points         int `json:"points"`
		} `json:"table"`
	} `json:"standings"`
}

// Standings fetches the overall competition table. This is a pass-through
// read for the standings command; the reminder engine never calls it.
func (c *Client) Standings(ctx context.Context, competition entity.Competition) ([]entity.StandingRow, error) {
	body, err := c.get(ctx, fmt.Sprintf("/v4/competitions/%s/standings", competition.Code()), nil)
	if err != nil {
		return nil, err
	}

	var resp standingsResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	for _, s := range resp.Standings {
		if s.Type != "TOTAL" {
			continue
		}
		rows := make([]entity.StandingRow, 0, len(s.Table))
		for _, t := range s.Table {
			rows = append(rows, entity.StandingRow{
				Position:       t.Position,
				Team:           t.Team.Name,
				Played:         t.PlayedGames,
				Won:            t.Won,
				Draw:           t.Draw,
				Lost:           t.Lost,
				GoalDifference: t.GoalDifference,
				Points:         t.Points,
			})
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: no TOTAL standings for %s", ErrSourceUnavailable, competition.Code())
}
