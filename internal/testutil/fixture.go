package testutil

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
)

const (
	defaultFixtureGuildID  = "1000000000000000001"
	fixturePathTemplate    = "/edit/%s"
	errorMessageBuildPage  = "build fixture page: %v"
	errorMessageMountPanel = "mount fixture panel: %v"
)

// PanelFixture bundles a standard configuration page with the panel mounted on it.
type PanelFixture struct {
	Document *page.Document
	Panel    *panel.Panel
	Logs     *observer.ObservedLogs
	GuildID  string
}

type testingLogWriter struct {
	testingT *testing.T
}

func (writer testingLogWriter) Write(data []byte) (int, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed != "" {
		writer.testingT.Log(trimmed)
	}
	return len(data), nil
}

// NewTestLogger returns a debug logger that writes through testingT.Log and
// records every entry for assertions.
func NewTestLogger(testingT *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	testingT.Helper()
	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	testingCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(testingLogWriter{testingT: testingT}),
		zapcore.DebugLevel,
	)
	return zap.New(zapcore.NewTee(testingCore, observedCore)), observedLogs
}

// NewPanelFixture builds the standard page and mounts a panel on the guild's
// configuration path.
func NewPanelFixture(testingT *testing.T, layoutOptions panel.LayoutOptions) PanelFixture {
	testingT.Helper()
	if layoutOptions.GuildID == "" {
		layoutOptions.GuildID = defaultFixtureGuildID
	}

	document, buildErr := panel.BuildDocument(layoutOptions)
	if buildErr != nil {
		testingT.Fatalf(errorMessageBuildPage, buildErr)
	}
	logger, observedLogs := NewTestLogger(testingT)
	mountedPanel, mountErr := panel.New(document, panel.Options{
		Logger:  logger,
		Path:    fmt.Sprintf(fixturePathTemplate, layoutOptions.GuildID),
		GuildID: layoutOptions.GuildID,
	})
	if mountErr != nil {
		testingT.Fatalf(errorMessageMountPanel, mountErr)
	}

	return PanelFixture{
		Document: document,
		Panel:    mountedPanel,
		Logs:     observedLogs,
		GuildID:  layoutOptions.GuildID,
	}
}
