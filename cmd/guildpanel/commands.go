package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/panelstate"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/report"
)

const (
	previewCommandUse         = "preview"
	previewCommandShort       = "Render the embed previews of a saved panel state"
	submitCommandUse          = "submit"
	submitCommandShort        = "Print the form submission of a saved panel state"
	groupsCommandUse          = "groups"
	groupsCommandShort        = "List the preview groups and the fields they read"
	formatHTML                = "html"
	formatJSON                = "json"
	unsupportedFormatMessage  = "unsupported format"
	createOutputErrorMessage  = "create output"
	fieldListSeparator        = ", "
	outputFilePermissions     = 0o644
	logEventPreviewRendered   = "preview_rendered"
	logEventSubmissionPrinted = "submission_printed"
	logEventCommandFailed     = "command_failed"
	logFieldFormat            = "format"
	logFieldOutput            = "output"
	logFieldCards             = "cards"
	logFieldValues            = "values"
	standardOutputName        = "stdout"
)

// ErrUnsupportedFormat indicates a preview format other than html or json.
var ErrUnsupportedFormat = errors.New(unsupportedFormatMessage)

func (application *GuildPanelApplication) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   previewCommandUse,
		Short: previewCommandShort,
		RunE:  application.runPreview,
	}
}

func (application *GuildPanelApplication) submitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   submitCommandUse,
		Short: submitCommandShort,
		RunE:  application.runSubmit,
	}
}

func (application *GuildPanelApplication) groupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   groupsCommandUse,
		Short: groupsCommandShort,
		RunE:  application.runGroups,
	}
}

func (application *GuildPanelApplication) runPreview(command *cobra.Command, arguments []string) error {
	if argumentsErr := ensureNoArguments(arguments); argumentsErr != nil {
		return argumentsErr
	}
	format := strings.ToLower(strings.TrimSpace(application.configurationLoader.GetString(environmentKeyFormat)))
	if format != formatHTML && format != formatJSON {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	logger, mountedPanel, state, mountErr := application.mountState()
	if mountErr != nil {
		return mountErr
	}
	defer func() {
		_ = logger.Sync()
	}()

	snapshot := report.NewSnapshot(state.GuildID, state.ConfigPath(), mountedPanel, nil)
	outputPath := strings.TrimSpace(application.configurationLoader.GetString(environmentKeyOutput))
	writer, closeOutput, outputErr := openOutput(command.OutOrStdout(), outputPath)
	if outputErr != nil {
		logger.Error(logEventCommandFailed, zap.Error(outputErr))
		return outputErr
	}
	defer closeOutput()

	render := report.Render
	if format == formatJSON {
		render = report.RenderJSON
	}
	if renderErr := render(writer, snapshot); renderErr != nil {
		logger.Error(logEventCommandFailed, zap.Error(renderErr))
		return renderErr
	}

	if outputPath == "" {
		outputPath = standardOutputName
	}
	logger.Info(logEventPreviewRendered,
		zap.String(logFieldFormat, format),
		zap.String(logFieldOutput, outputPath),
		zap.Int(logFieldCards, len(snapshot.Cards)),
	)
	return nil
}

func (application *GuildPanelApplication) runSubmit(command *cobra.Command, arguments []string) error {
	if argumentsErr := ensureNoArguments(arguments); argumentsErr != nil {
		return argumentsErr
	}
	logger, mountedPanel, _, mountErr := application.mountState()
	if mountErr != nil {
		return mountErr
	}
	defer func() {
		_ = logger.Sync()
	}()

	values := mountedPanel.Submission()
	if _, writeErr := fmt.Fprintln(command.OutOrStdout(), values.Encode()); writeErr != nil {
		return writeErr
	}
	logger.Info(logEventSubmissionPrinted, zap.Int(logFieldValues, len(values)))
	return nil
}

func (application *GuildPanelApplication) runGroups(command *cobra.Command, arguments []string) error {
	if argumentsErr := ensureNoArguments(arguments); argumentsErr != nil {
		return argumentsErr
	}
	tableWriter := tabwriter.NewWriter(command.OutOrStdout(), 0, 4, 2, ' ', 0)
	groups := append(panel.StaticGroups(), panel.QnARowGroup(page.RowPlaceholder))
	for _, group := range groups {
		fmt.Fprintf(tableWriter, "%s\t%s\t%s\n", group.Spec.Name, group.Label, strings.Join(group.Spec.SourceFields(), fieldListSeparator))
	}
	return tableWriter.Flush()
}

func (application *GuildPanelApplication) mountState() (*zap.Logger, *panel.Panel, panelstate.State, error) {
	statePath := strings.TrimSpace(application.configurationLoader.GetString(environmentKeyState))
	if statePath == "" {
		return nil, nil, panelstate.State{}, fmt.Errorf("%s: %s", missingConfigurationMessage, flagNameState)
	}

	logger, loggerErr := application.newLogger()
	if loggerErr != nil {
		return nil, nil, panelstate.State{}, loggerErr
	}

	state, loadErr := panelstate.Load(statePath)
	if loadErr != nil {
		logger.Error(logEventCommandFailed, zap.Error(loadErr))
		return nil, nil, panelstate.State{}, loadErr
	}
	mountedPanel, mountErr := panelstate.Mount(state, logger, preview.NewTransformer())
	if mountErr != nil {
		logger.Error(logEventCommandFailed, zap.Error(mountErr))
		return nil, nil, panelstate.State{}, mountErr
	}
	return logger, mountedPanel, state, nil
}

func openOutput(standardOutput io.Writer, outputPath string) (io.Writer, func(), error) {
	if outputPath == "" {
		return standardOutput, func() {}, nil
	}
	outputFile, createErr := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputFilePermissions)
	if createErr != nil {
		return nil, nil, fmt.Errorf("%s: %w", createOutputErrorMessage, createErr)
	}
	return outputFile, func() {
		_ = outputFile.Close()
	}, nil
}
