package test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/handlers"
	"github.com/blaugranahub/matchday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	DataManagerMock    *mocks.MockDataManager
	SubscriberRepoMock *mocks.MockSubscriberRepo
	FixtureSourceMock  *mocks.MockFixtureSource
	SchedulerMock      *mocks.MockReminderScheduler
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)
	subscriberRepo := mocks.NewMockSubscriberRepo(ctrl)
	dm.EXPECT().Subscriber().Return(subscriberRepo).AnyTimes()
	// Run transactional closures against the same mocks.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = ServiceMocks{
		DataManagerMock:    dm,
		SubscriberRepoMock: subscriberRepo,
		FixtureSourceMock:  mocks.NewMockFixtureSource(ctrl),
		SchedulerMock:      mocks.NewMockReminderScheduler(ctrl),
	}

	handler = handlers.New(dm, m.FixtureSourceMock, m.SchedulerMock, time.UTC, SigningSecret)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
