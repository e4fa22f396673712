package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSubscribe   CommandType = "subscribe"
	CmdUnsubscribe CommandType = "unsubscribe"
	CmdNext        CommandType = "next"
	CmdStandings   CommandType = "standings"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "subscribe", "sub", "start":
		cmd.Type = CmdSubscribe
	case "unsubscribe", "unsub", "stop":
		cmd.Type = CmdUnsubscribe
	case "next", "fixtures", "upcoming":
		cmd.Type = CmdNext
	case "standings", "table":
		cmd.Type = CmdStandings
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Reminders:*
• ` + "`/barca subscribe`" + ` - Get match reminders in this channel (7h, 5h and 2h before kickoff)
• ` + "`/barca unsubscribe`" + ` - Stop reminders for this channel

*Matches:*
• ` + "`/barca next`" + ` - Show upcoming fixtures with local kickoff times

*Standings:*
• ` + "`/barca standings league`" + ` - La Liga table
• ` + "`/barca standings cl`" + ` - Champions League table`
}
