package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should parse subscribe", text: "subscribe", wantType: CmdSubscribe},
		{name: "Should parse sub alias", text: "sub", wantType: CmdSubscribe},
		{name: "Should parse start alias", text: "start", wantType: CmdSubscribe},
		{name: "Should parse unsubscribe", text: "unsubscribe", wantType: CmdUnsubscribe},
		{name: "Should parse stop alias", text: "stop", wantType: CmdUnsubscribe},
		{name: "Should parse next", text: "next", wantType: CmdNext},
		{name: "Should parse fixtures alias", text: "fixtures", wantType: CmdNext},
		{name: "Should parse standings with argument", text: "standings league", wantType: CmdStandings, wantArgs: []string{"league"}},
		{name: "Should parse table alias", text: "table cl", wantType: CmdStandings, wantArgs: []string{"cl"}},
		{name: "Should parse help", text: "help", wantType: CmdHelp},
		{name: "Should default to help on empty text", text: "", wantType: CmdHelp},
		{name: "Should default to help on whitespace", text: "   ", wantType: CmdHelp},
		{name: "Should reject unknown commands", text: "dance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantArgs, got.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/barca subscribe")
	assert.Contains(t, help, "/barca unsubscribe")
	assert.Contains(t, help, "/barca next")
	assert.Contains(t, help, "/barca standings")
}
