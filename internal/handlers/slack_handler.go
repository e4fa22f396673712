package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blaugranahub/matchday-bot/internal/domain/contract"
	"github.com/blaugranahub/matchday-bot/internal/domain/entity"
	slackcmd "github.com/blaugranahub/matchday-bot/internal/slack"
	"github.com/blaugranahub/matchday-bot/internal/timeutil"
	"github.com/slack-go/slack"
)

const standingsTimeout = 15 * time.Second

type SlackHandler struct {
	dm            contract.DataManager
	source        contract.FixtureSource
	scheduler     contract.ReminderScheduler
	loc           *time.Location
	signingSecret string
}

func New(dm contract.DataManager, source contract.FixtureSource, scheduler contract.ReminderScheduler, loc *time.Location, signingSecret string) *SlackHandler {
	return &SlackHandler{
		dm:            dm,
		source:        source,
		scheduler:     scheduler,
		loc:           loc,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSubscribe:
		return h.handleSubscribe(slashCmd)
	case slackcmd.CmdUnsubscribe:
		return h.handleUnsubscribe(slashCmd)
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdStandings:
		return h.handleStandings(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	subscriber := &entity.Subscriber{
		SlackChannelID: slashCmd.ChannelID,
		SlackTeamID:    slashCmd.TeamID,
	}

	// Check-then-add runs in one transaction; two racing subscribe commands
	// cannot interleave between the read and the insert.
	var alreadySubscribed bool
	err := h.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		existing, err := dm.Subscriber().GetByChannelID(slashCmd.ChannelID)
		if err != nil {
			return err
		}
		if existing != nil {
			alreadySubscribed = true
			return nil
		}
		return dm.Subscriber().Add(subscriber)
	})
	if err != nil {
		return h.createErrorResponse("Failed to subscribe this channel")
	}

	if alreadySubscribed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "This channel is already subscribed.\n\n" + h.schedulePreview(),
		}
	}

	// Pull a fresh schedule so the new subscriber doesn't wait for the
	// daily refresh.
	h.scheduler.RequestResync()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ This channel will now receive FC Barcelona match reminders.\n\n" + h.schedulePreview(),
	}
}

func (h *SlackHandler) handleUnsubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.dm.Subscriber().Remove(slashCmd.ChannelID); err != nil {
		return h.createErrorResponse("Failed to unsubscribe this channel")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🔕 This channel will no longer receive match reminders.",
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	fixtures := h.scheduler.UpcomingFixtures()
	if len(fixtures) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No upcoming fixtures on the schedule yet.",
		}
	}

	var sb strings.Builder
	sb.WriteString("*Upcoming fixtures:*\n")
	for i, fx := range fixtures {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("• %s — %s (%s)\n",
			fx.Label(), timeutil.FormatKickoff(fx.Kickoff, h.loc), fx.Competition.DisplayName()))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleStandings(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please pick a competition: `/barca standings league` or `/barca standings cl`")
	}

	competition, ok := parseCompetition(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Unknown competition %q. Use `league` or `cl`.", cmd.Args[0]))
	}

	ctx, cancel := context.WithTimeout(context.Background(), standingsTimeout)
	defer cancel()

	rows, err := h.source.Standings(ctx, competition)
	if err != nil {
		return h.createErrorResponse("Standings are unavailable right now, try again later")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s table:*\n```", competition.DisplayName()))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%2d. %-24s MP %2d  GD %+3d  %3d pts\n",
			row.Position, row.Team, row.Played, row.GoalDifference, row.Points))
	}
	sb.WriteString("```")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// schedulePreview summarizes the next few fixtures and pending reminders.
func (h *SlackHandler) schedulePreview() string {
	fixtures := h.scheduler.UpcomingFixtures()
	if len(fixtures) == 0 {
		return "No upcoming fixtures on the schedule yet."
	}

	pending := make(map[int64]int)
	for _, job := range h.scheduler.PendingJobs() {
		pending[job.FixtureID]++
	}

	var sb strings.Builder
	sb.WriteString("*Next matches:*\n")
	for i, fx := range fixtures {
		if i >= 5 {
			break
		}
		sb.WriteString(fmt.Sprintf("• %s — %s (%d reminders scheduled)\n",
			fx.Label(), timeutil.FormatKickoff(fx.Kickoff, h.loc), pending[fx.ID]))
	}
	return sb.String()
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func parseCompetition(arg string) (entity.Competition, bool) {
	switch strings.ToLower(arg) {
	case "league", "laliga", "liga", "pd":
		return entity.CompetitionLeague, true
	case "cl", "ucl", "champions":
		return entity.CompetitionChampionsLeague, true
	default:
		return "", false
	}
}
