package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/testutil"
)

const (
	testCaseDescriptionShopGroup        = "mounts shop group"
	testCaseDescriptionAccountGroup     = "mounts account group"
	testCaseDescriptionRatesGroup       = "mounts rates group"
	testCaseDescriptionLeaderboardGroup = "mounts leaderboard group"
	fixtureGuildID                      = "777"
)

func TestNewPanelFixtureMountsEveryStaticGroup(t *testing.T) {
	fixture := testutil.NewPanelFixture(t, panel.LayoutOptions{})

	testCases := []struct {
		name      string
		groupName string
	}{
		{name: testCaseDescriptionShopGroup, groupName: panel.GroupShop},
		{name: testCaseDescriptionAccountGroup, groupName: panel.GroupAccount},
		{name: testCaseDescriptionRatesGroup, groupName: panel.GroupRates},
		{name: testCaseDescriptionLeaderboardGroup, groupName: panel.GroupLeaderboard},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			_, mounted := fixture.Panel.Binder(testCase.groupName)
			require.True(testingT, mounted)
		})
	}
}

func TestNewPanelFixtureHighlightsConfigurationLink(t *testing.T) {
	fixture := testutil.NewPanelFixture(t, panel.LayoutOptions{GuildID: fixtureGuildID})

	require.Equal(t, fixtureGuildID, fixture.GuildID)
	require.NotNil(t, fixture.Panel.ActiveSidebarLink())
	require.Equal(t, "nav-config", fixture.Panel.ActiveSidebarLink().ID())
}

func TestNewTestLoggerRecordsEntries(t *testing.T) {
	logger, observedLogs := testutil.NewTestLogger(t)
	logger.Debug("fixture_event")

	require.Equal(t, 1, observedLogs.FilterMessage("fixture_event").Len())
}
