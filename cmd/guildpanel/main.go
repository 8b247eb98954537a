package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	commandUseName                = "guildpanel"
	commandShortDescription       = "Preview and submit guild configuration panels"
	commandLongDescription        = "Replay saved guild configuration forms through the live embed preview engine"
	missingConfigurationMessage   = "missing required configuration"
	loggerCreationErrorMessage    = "logger"
	flagNameState                 = "state"
	flagNameFormat                = "format"
	flagNameOutput                = "output"
	flagNameLogLevel              = "log-level"
	flagUsageState                = "path to the YAML panel state file"
	flagUsageFormat               = "preview output format: html or json"
	flagUsageOutput               = "file to write the preview to instead of stdout"
	flagUsageLogLevel             = "log level: debug, info, warn or error"
	environmentKeyState           = "GUILDPANEL_STATE"
	environmentKeyFormat          = "GUILDPANEL_FORMAT"
	environmentKeyOutput          = "GUILDPANEL_OUTPUT"
	environmentKeyLogLevel        = "GUILDPANEL_LOG_LEVEL"
	defaultFormat                 = formatHTML
	defaultLogLevel               = "info"
	unexpectedArgumentsMessage    = "unexpected command arguments"
	commandInitializationFailure  = "failed to configure command"
	flagNotDefinedMessage         = "flag %s not defined"
	environmentConfigurationError = "failed to apply environment configuration"
)

// LoggerFactory builds the logger used by a command run.
type LoggerFactory func(level string) (*zap.Logger, error)

// GuildPanelApplication constructs and executes the guildpanel command tree.
type GuildPanelApplication struct {
	configurationLoader *viper.Viper
	loggerFactory       LoggerFactory
}

// NewGuildPanelApplication creates a GuildPanelApplication with default dependencies.
func NewGuildPanelApplication() *GuildPanelApplication {
	return &GuildPanelApplication{
		configurationLoader: viper.New(),
		loggerFactory:       newProductionLogger,
	}
}

// WithLoggerFactory overrides the logger factory dependency.
func (application *GuildPanelApplication) WithLoggerFactory(loggerFactory LoggerFactory) *GuildPanelApplication {
	application.loggerFactory = loggerFactory
	return application
}

// Command builds the Cobra command tree.
func (application *GuildPanelApplication) Command() (*cobra.Command, error) {
	rootCommand := &cobra.Command{
		Use:   commandUseName,
		Short: commandShortDescription,
		Long:  commandLongDescription,
	}
	previewCommand := application.previewCommand()
	rootCommand.AddCommand(previewCommand, application.submitCommand(), application.groupsCommand())

	if configurationErr := application.configureCommand(rootCommand, previewCommand); configurationErr != nil {
		return nil, configurationErr
	}

	return rootCommand, nil
}

func (application *GuildPanelApplication) configureCommand(rootCommand *cobra.Command, previewCommand *cobra.Command) error {
	application.configurationLoader.SetDefault(environmentKeyState, "")
	application.configurationLoader.SetDefault(environmentKeyFormat, defaultFormat)
	application.configurationLoader.SetDefault(environmentKeyOutput, "")
	application.configurationLoader.SetDefault(environmentKeyLogLevel, defaultLogLevel)
	application.configurationLoader.AutomaticEnv()

	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.String(flagNameState, "", flagUsageState)
	persistentFlags.String(flagNameLogLevel, defaultLogLevel, flagUsageLogLevel)

	previewFlags := previewCommand.Flags()
	previewFlags.String(flagNameFormat, defaultFormat, flagUsageFormat)
	previewFlags.String(flagNameOutput, "", flagUsageOutput)

	bindings := []struct {
		flagSet        *pflag.FlagSet
		environmentKey string
		flagName       string
	}{
		{flagSet: persistentFlags, environmentKey: environmentKeyState, flagName: flagNameState},
		{flagSet: persistentFlags, environmentKey: environmentKeyLogLevel, flagName: flagNameLogLevel},
		{flagSet: previewFlags, environmentKey: environmentKeyFormat, flagName: flagNameFormat},
		{flagSet: previewFlags, environmentKey: environmentKeyOutput, flagName: flagNameOutput},
	}

	for _, binding := range bindings {
		if bindErr := application.bindFlag(binding.flagSet, binding.environmentKey, binding.flagName); bindErr != nil {
			return bindErr
		}
	}

	for _, binding := range bindings {
		if environmentErr := application.applyEnvironmentConfiguration(binding.flagSet, binding.environmentKey, binding.flagName); environmentErr != nil {
			return environmentErr
		}
	}

	return nil
}

func (application *GuildPanelApplication) bindFlag(flagSet *pflag.FlagSet, environmentKey string, flagName string) error {
	flag := flagSet.Lookup(flagName)
	if flag == nil {
		return fmt.Errorf(flagNotDefinedMessage, flagName)
	}

	if bindErr := application.configurationLoader.BindPFlag(environmentKey, flag); bindErr != nil {
		return bindErr
	}

	return nil
}

func (application *GuildPanelApplication) applyEnvironmentConfiguration(flagSet *pflag.FlagSet, environmentKey string, flagName string) error {
	environmentValue, environmentFound := os.LookupEnv(environmentKey)
	if !environmentFound {
		return nil
	}

	if setErr := flagSet.Set(flagName, environmentValue); setErr != nil {
		return fmt.Errorf("%s: %w", environmentConfigurationError, setErr)
	}

	return nil
}

func (application *GuildPanelApplication) newLogger() (*zap.Logger, error) {
	logger, loggerErr := application.loggerFactory(application.configurationLoader.GetString(environmentKeyLogLevel))
	if loggerErr != nil {
		return nil, fmt.Errorf("%s: %w", loggerCreationErrorMessage, loggerErr)
	}
	return logger, nil
}

func newProductionLogger(level string) (*zap.Logger, error) {
	atomicLevel, levelErr := zap.ParseAtomicLevel(strings.TrimSpace(level))
	if levelErr != nil {
		return nil, levelErr
	}
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Level = atomicLevel
	return loggerConfiguration.Build()
}

func ensureNoArguments(arguments []string) error {
	if len(arguments) > 0 {
		return fmt.Errorf("%s: %s", unexpectedArgumentsMessage, strings.Join(arguments, " "))
	}
	return nil
}

func main() {
	application := NewGuildPanelApplication()
	rootCommand, commandErr := application.Command()
	if commandErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", commandInitializationFailure, commandErr)
		os.Exit(1)
	}

	if executeErr := rootCommand.Execute(); executeErr != nil {
		os.Exit(1)
	}
}
