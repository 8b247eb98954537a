package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/report"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/testutil"
)

const (
	reportGuildID  = "31337"
	reportPath     = "/edit/31337"
	reportImageURL = "https://cdn.example.com/board.png"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func newReportSnapshot(testingT *testing.T) report.Snapshot {
	testingT.Helper()
	fixture := testutil.NewPanelFixture(testingT, panel.LayoutOptions{GuildID: reportGuildID})
	require.NoError(testingT, fixture.Panel.SetField(panel.FieldShopTitle, "Hello <:wave:77>"))
	require.NoError(testingT, fixture.Panel.SetField(panel.FieldLeaderboardImageURL, reportImageURL))
	return report.NewSnapshot(reportGuildID, reportPath, fixture.Panel, nil)
}

func TestRenderWritesCardMarkupVerbatim(t *testing.T) {
	snapshot := newReportSnapshot(t)

	var buffer bytes.Buffer
	require.NoError(t, report.Render(&buffer, snapshot))
	rendered := buffer.String()

	testCases := []struct {
		name             string
		expectedFragment string
	}{
		{name: "emoji image survives", expectedFragment: `<div class="discord-embed-title">Hello ` + preview.EmojiImageMarkup("wave", "77", "png") + `</div>`},
		{name: "accent color", expectedFragment: `data-accent="` + preview.DefaultAccentColor + `"`},
		{name: "visible image", expectedFragment: `<img class="discord-embed-image" src="` + reportImageURL + `" alt="">`},
		{name: "group marker", expectedFragment: `data-group="` + panel.GroupLeaderboard + `"`},
		{name: "guild marker", expectedFragment: `data-guild="` + reportGuildID + `"`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(testingT *testing.T) {
			require.Contains(testingT, rendered, testCase.expectedFragment)
		})
	}
	require.NotContains(t, rendered, `class="discord-embed-thumbnail"`)
}

func TestRenderLeavesLineBreaksToMarkup(t *testing.T) {
	fixture := testutil.NewPanelFixture(t, panel.LayoutOptions{GuildID: reportGuildID})
	require.NoError(t, fixture.Panel.SetField(panel.FieldShopDescription, "first\nsecond"))

	var buffer bytes.Buffer
	require.NoError(t, report.Render(&buffer, report.NewSnapshot(reportGuildID, reportPath, fixture.Panel, nil)))
	rendered := buffer.String()

	require.Contains(t, rendered, "first<br>\nsecond")
	require.NotContains(t, rendered, "pre-wrap")
}

func TestRenderWithoutCardsShowsPlaceholder(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, report.Render(&buffer, report.NewSnapshot(reportGuildID, reportPath, nil, nil)))
	require.Contains(t, buffer.String(), "No preview groups are mounted.")
}

func TestRenderJSONEncodesSnapshot(t *testing.T) {
	snapshot := newReportSnapshot(t)

	var buffer bytes.Buffer
	require.NoError(t, report.RenderJSON(&buffer, snapshot))
	require.Contains(t, buffer.String(), `"guild_id": "31337"`)
	require.Contains(t, buffer.String(), "size=48&quality=lossless")

	var decoded report.Snapshot
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	if diff := cmp.Diff(snapshot, decoded); diff != "" {
		t.Fatalf("decoded snapshot mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "tab-general", decoded.ActivePane)
}

func TestRenderReportsWriterFailures(t *testing.T) {
	snapshot := newReportSnapshot(t)
	require.ErrorIs(t, report.Render(failingWriter{}, snapshot), report.ErrRenderHTML)
	require.ErrorIs(t, report.RenderJSON(failingWriter{}, snapshot), report.ErrRenderJSON)
}
