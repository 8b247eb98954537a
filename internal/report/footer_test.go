package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/report"
)

const (
	testFooterGuildID = "9001"
	testFooterPath    = "/edit/9001"
)

func TestRenderFooterListsGuildLinks(t *testing.T) {
	footerHTML, renderErr := report.RenderFooter(report.Snapshot{GuildID: testFooterGuildID, Path: testFooterPath})
	require.NoError(t, renderErr)

	testCases := []struct {
		name             string
		expectedFragment string
	}{
		{name: "prefix", expectedFragment: "Preview of"},
		{name: "path", expectedFragment: "<code>" + testFooterPath + "</code>"},
		{name: "configuration link", expectedFragment: `<a href="/edit/9001">Configuration</a>`},
		{name: "members link", expectedFragment: `<a href="/edit/9001/member/">Members</a>`},
		{name: "history link", expectedFragment: `<a href="/edit/9001/history">History</a>`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			require.Contains(testingT, string(footerHTML), testCase.expectedFragment)
		})
	}
}

func TestRenderFooterWithoutGuildOmitsLinks(t *testing.T) {
	require.Nil(t, report.GuildLinks(""))

	footerHTML, renderErr := report.RenderFooter(report.Snapshot{})
	require.NoError(t, renderErr)
	require.NotContains(t, string(footerHTML), "<ul")
}
