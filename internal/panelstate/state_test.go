package panelstate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/panelstate"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/testutil"
)

const (
	sampleStatePath   = "testdata/panel.yaml"
	sampleGuildID     = "424242"
	sampleAccentColor = "#3366ff"
)

func TestLoadReadsSampleState(t *testing.T) {
	state, loadErr := panelstate.Load(sampleStatePath)
	require.NoError(t, loadErr)

	require.Equal(t, sampleGuildID, state.GuildID)
	require.Equal(t, "/edit/"+sampleGuildID, state.ConfigPath())
	require.Len(t, state.QnA, 1)
	require.Equal(t, "How do I earn coins?", state.QnA[0].Question)
	require.Equal(t, []panelstate.RateRow{{ID: "700", Rate: "1.5"}}, state.ChannelRates)

	layoutOptions := state.LayoutOptions()
	require.Len(t, layoutOptions.AvailableRoles, 1)
	require.Equal(t, "VIP", layoutOptions.AvailableRoles[0].Label)
}

func TestParseRejectsInvalidStates(t *testing.T) {
	testCases := []struct {
		name          string
		document      string
		expectedError error
	}{
		{name: "missing guild", document: "fields: {}\n", expectedError: panelstate.ErrMissingGuildID},
		{name: "empty document", document: "", expectedError: panelstate.ErrMissingGuildID},
		{name: "unknown top-level key", document: "guild_id: \"1\"\ntheme: dark\n", expectedError: panelstate.ErrDecodeState},
		{name: "malformed yaml", document: "guild_id: [\n", expectedError: panelstate.ErrDecodeState},
		{name: "unknown field", document: "guild_id: \"1\"\nfields:\n  NOT_A_FIELD: x\n", expectedError: panelstate.ErrUnknownField},
		{name: "role without id", document: "guild_id: \"1\"\nroles:\n  selected:\n    - name: VIP\n", expectedError: panelstate.ErrInvalidRole},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			_, parseErr := panelstate.Parse([]byte(testCase.document))
			require.ErrorIs(testingT, parseErr, testCase.expectedError)
		})
	}
}

func TestLoadReportsMissingFile(t *testing.T) {
	_, loadErr := panelstate.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, loadErr, panelstate.ErrReadState)
}

func TestMountReplaysStateIntoPreviews(t *testing.T) {
	state, loadErr := panelstate.Load(sampleStatePath)
	require.NoError(t, loadErr)
	logger, observedLogs := testutil.NewTestLogger(t)

	mountedPanel, mountErr := panelstate.Mount(state, logger, preview.NewTransformer())
	require.NoError(t, mountErr)

	cards := mountedPanel.Cards()
	require.Len(t, cards, 5)
	for _, card := range cards {
		require.Equal(t, sampleAccentColor, card.BorderColor, card.Group)
	}
	require.Equal(t, "Welcome to the "+preview.EmojiImageMarkup("coin", "555", "png")+" shop", cards[0].Title)
	require.True(t, cards[0].Image.Visible)
	require.Equal(t, "You have <strong>9,999</strong> coins", cards[1].Description)
	require.Equal(t, "❓ How do I earn coins?", cards[4].Title)
	require.Equal(t, "Chat in <em>any</em> channel.", cards[4].Description)

	require.Equal(t, "tab-qna", mountedPanel.Tabs().ActivePane())
	require.Equal(t, 1, observedLogs.FilterMessage("panel_state_applied").Len())

	shopRoles := mountedPanel.Rows(panel.RowShopRole)
	require.Len(t, shopRoles, 1)
	colorControl, found := shopRoles[0].Control(panel.RowFieldColor)
	require.True(t, found)
	require.Equal(t, "#ffaa00", colorControl.Value())

	values := mountedPanel.Submission()
	require.Equal(t, "900100", values.Get(panel.FieldShopChannelID))
	require.Equal(t, []string{"2"}, values[panel.FieldSelectedRoles])
}

func TestMountActivatesTabByNameOrTarget(t *testing.T) {
	testCases := []struct {
		name         string
		activeTab    string
		expectedPane string
	}{
		{name: "tab name", activeTab: panel.TabQnA, expectedPane: "tab-qna"},
		{name: "another tab name", activeTab: panel.TabShop, expectedPane: "tab-shop"},
		{name: "pane id", activeTab: "tab-messages", expectedPane: "tab-messages"},
		{name: "link target", activeTab: "#tab-qna", expectedPane: "tab-qna"},
		{name: "unset keeps first tab", activeTab: "", expectedPane: "tab-general"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			mountedPanel, mountErr := panelstate.Mount(panelstate.State{GuildID: sampleGuildID, ActiveTab: testCase.activeTab}, nil, nil)
			require.NoError(testingT, mountErr)
			require.Equal(testingT, testCase.expectedPane, mountedPanel.Tabs().ActivePane())
		})
	}
}

func TestApplyRejectsUnknownTabAndBadColor(t *testing.T) {
	testCases := []struct {
		name          string
		state         panelstate.State
		expectedError error
	}{
		{
			name:          "unknown tab",
			state:         panelstate.State{GuildID: sampleGuildID, ActiveTab: "billing"},
			expectedError: panelstate.ErrUnknownTab,
		},
		{
			name:          "invalid accent color",
			state:         panelstate.State{GuildID: sampleGuildID, Fields: map[string]string{panel.FieldEmbedColor: "magenta"}},
			expectedError: panelstate.ErrApplyState,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			_, mountErr := panelstate.Mount(testCase.state, nil, nil)
			require.ErrorIs(testingT, mountErr, testCase.expectedError)
		})
	}
}

func TestLoadHonorsExplicitPath(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(statePath, []byte("guild_id: \"9\"\npath: /edit/9/history\n"), 0o600))

	state, loadErr := panelstate.Load(statePath)
	require.NoError(t, loadErr)
	require.Equal(t, "/edit/9/history", state.ConfigPath())
}
