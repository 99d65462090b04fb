// Package commands implements the CLI commands for sysdoc.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/sysdoc/cmd"
	"github.com/thoreinstein/sysdoc/internal/config"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/logging"
	"github.com/thoreinstein/sysdoc/internal/paths"
	"github.com/thoreinstein/sysdoc/internal/profile"
	"github.com/thoreinstein/sysdoc/internal/render"
)

// categoryFlag holds the value of the --category flag.
var categoryFlag []string

// configFlag holds the path of the host config document.
var configFlag string

// logLevelFlag holds the value of the --log-level flag.
var logLevelFlag string

// systemFlag holds the value of the --system flag.
var systemFlag string

// parallelFlag bounds the number of pairs evaluated at once.
var parallelFlag int

// logFile holds the path to the log file.
var logFile string

// settings holds the resolved application settings.
var settings *config.Settings

// settingsErr holds any error that occurred while loading settings.
var settingsErr error

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&categoryFlag, "category", "x", nil,
		"categories to check: cpu, filesystem, memory, network, performance (default cpu,filesystem,memory,network)")
	flags.StringVarP(&configFlag, "config", "c", "",
		"host config document (JSON, YAML or TOML)")
	flags.StringVarP(&logLevelFlag, "log-level", "l", "",
		"log level: "+strings.Join(logging.LevelNames(), ", ")+" (default warning)")
	flags.StringVarP(&systemFlag, "system", "s", "",
		"system profile: "+strings.Join(profile.Names(), ", ")+" (env SYSDOC_SYSTEM)")
	flags.IntVar(&parallelFlag, "parallel", 0,
		"maximum checks evaluated at once (default GOMAXPROCS)")
	flags.StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("sysdoc version {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "print the version and exit")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	bindFlags()
	settings, settingsErr = config.Load("")
}

// bindFlags lets flags take precedence over the settings file and
// SYSDOC_* variables.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag(config.KeySystem, flags.Lookup("system"))
	_ = viper.BindPFlag(config.KeyCategories, flags.Lookup("category"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyParallel, flags.Lookup("parallel"))
}

var rootCmd = &cobra.Command{
	Use:   "sysdoc",
	Short: "Host health assessment",
	Long: `sysdoc checks a host against a system profile.

A profile pairs checks (pass/fail rules such as "at least 4 cores") with the
data sources they need. Data sources are evaluated once and shared between
the checks that use them; the outcomes roll up into a single report.

Telemetry can be captured with 'collect' and checked later, on any machine,
with 'check --file'.`,
	Example: `  # Check this host against a built-in profile
  sysdoc check --system MacBookPro10,2

  # Check with thresholds from a config document
  sysdoc check -s linux_custom -c /etc/sysdoc/host.yaml -x cpu,memory

  # Capture telemetry now, check it later
  sysdoc collect -s linux_custom -c host.yaml --file host.jsonl
  sysdoc check -s linux_custom -c host.yaml --file host.jsonl

  See Also: sysdoc list, sysdoc version`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if settingsErr != nil {
			return errors.NewConfigError(settingsErr)
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the resolved log level.
func setupLogging(cmd *cobra.Command) error {
	level := logging.DefaultLevel
	if settings != nil && settings.LogLevel != "" {
		l, err := logging.ParseLevel(settings.LogLevel)
		if err != nil {
			return errors.NewConfigError(err)
		}
		level = l
	}

	handlers := []slog.Handler{logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: cmd.ErrOrStderr(),
	}).Handler()}

	if logFile != "" {
		path, err := paths.ExpandHome(logFile)
		if err != nil {
			return errors.NewUserError(err, "failed to resolve log file")
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, logging.New(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}).Handler())
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler).With("run", uuid.NewString())
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// runOptions resolves the options shared by every subcommand.
func runOptions() (profile.Options, error) {
	s := settings
	if s == nil {
		s = &config.Settings{}
	}

	if s.System == "" {
		err := errors.Wrapf(errors.ErrUnknownProfile, "no system profile selected (available: %s)",
			strings.Join(profile.Names(), ", "))
		return profile.Options{}, &errors.ExitError{
			Err:        errors.Mark(err, errors.ErrConfig),
			Code:       errors.ExitUser,
			Suggestion: "Use --system or set SYSDOC_SYSTEM",
		}
	}

	categories, err := profile.ParseCategories(s.Categories)
	if err != nil {
		return profile.Options{}, errors.NewConfigError(err)
	}

	level := logging.DefaultLevel
	if s.LogLevel != "" {
		if level, err = logging.ParseLevel(s.LogLevel); err != nil {
			return profile.Options{}, errors.NewConfigError(err)
		}
	}

	configFile, err := paths.ExpandHome(configFlag)
	if err != nil {
		return profile.Options{}, errors.NewConfigError(err)
	}

	return profile.Options{
		Categories:  categories,
		System:      s.System,
		ConfigFile:  configFile,
		Format:      render.FormatText,
		LogLevel:    level,
		Parallelism: s.Parallel,
	}, nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
