package contract

import (
	"context"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
)

//go:generate mockgen -source=source.go -destination=../../../mocks/source.go -package=mocks

// FixtureSource is the external fixtures provider. Read-only from the
// engine's perspective. Implementations must return within a bounded time;
// fetch failures are reported as footballdata.ErrSourceUnavailable so the
// engine keeps its prior schedule and retries next cycle.
type FixtureSource interface {
	ListUpcoming(ctx context.Context, competition entity.Competition) ([]entity.Fixture, error)
	Standings(ctx context.Context, competition entity.Competition) ([]entity.StandingRow, error)
}
