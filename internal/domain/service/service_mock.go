package service

import (
	"testing"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	"github.com/blaugranahub/matchday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockSubscriberRepo *mocks.MockSubscriberRepo
	mockFixtureSource  *mocks.MockFixtureSource
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	subscriberRepo := mocks.NewMockSubscriberRepo(ctrl)
	dm.EXPECT().Subscriber().Return(subscriberRepo).AnyTimes()

	fixtureSource := mocks.NewMockFixtureSource(ctrl)
	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockSubscriberRepo: subscriberRepo,
		mockFixtureSource:  fixtureSource,
		mockSlackClient:    slackClient,
	}

	return
}

var testLeadTimes = []time.Duration{7 * time.Hour, 5 * time.Hour, 2 * time.Hour}

// newTestScheduler builds a scheduler with a frozen clock so tests can drive
// the loop's internals directly.
func newTestScheduler(t *testing.T, m allMocks, now time.Time) *scheduler {
	t.Helper()

	d := newDispatcher(m.mockDataManager, m.mockSlackClient, time.UTC)
	s := newScheduler(m.mockDataManager, m.mockFixtureSource, d,
		testLeadTimes, []entity.Competition{entity.CompetitionLeague}, time.UTC, 0)
	require.NotNil(t, s)

	s.now = func() time.Time { return now }
	return s
}
