package controllers

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

const envPrefix = "REFBUMP"

// invocation is the resolved configuration of one subcommand run:
// config file values overlaid by REFBUMP_* environment variables and flags.
type invocation struct {
	settings *entities.Settings
	values   *viper.Viper
}

// loadInvocation reads the config file (explicit, auto-detected or none) and
// applies environment and flag overrides on top of it.
func loadInvocation(cmd *cobra.Command) (*invocation, error) {
	values := viper.New()
	values.SetEnvPrefix(envPrefix)
	values.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	values.AutomaticEnv()
	if err := values.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if values.GetBool("verbose") {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := readSettings(values.GetString("config"))
	if err != nil {
		return nil, err
	}

	overrideString(values, "root", &settings.RootDir)
	overrideString(values, "project-filter", &settings.ProjectFilter)
	overrideString(values, "nuspec-filter", &settings.NuspecFilter)
	overrideString(values, "nuget-config-filter", &settings.NugetConfigFilter)
	overrideString(values, "nuget-output", &settings.NugetOutput)
	overrideString(values, "nuget-tool-dir", &settings.NugetToolDir)
	overrideString(values, "build-tool-dir", &settings.BuildToolDir)
	if values.IsSet("exclude") {
		settings.Exclude = values.GetStringSlice("exclude")
	}
	settings.ExpandEnv()

	if err = settings.Validate(); err != nil {
		return nil, err
	}
	return &invocation{settings: settings, values: values}, nil
}

func readSettings(configPath string) (*entities.Settings, error) {
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func overrideString(values *viper.Viper, key string, target *string) {
	if values.IsSet(key) {
		*target = values.GetString(key)
	}
}

// options returns the batch options shared by every rewriting subcommand.
func (it *invocation) options() entities.UpdateOptions {
	return entities.UpdateOptions{
		DryRun:       it.values.GetBool("dry-run"),
		RequireClean: it.values.GetBool("require-clean"),
	}
}

// versionInfo returns the requested target, falling back to the configured version.
// The second return value is false when no target was requested at all.
func (it *invocation) versionInfo(configured string) (entities.VersionInfo, bool) {
	version := entities.VersionInfo{
		Version: it.values.GetString("set-version"),
		Bump:    it.values.GetString("bump"),
	}
	if version.Version == "" && version.Bump == "" {
		version.Version = configured
	}
	return version, version.Version != "" || version.Bump != ""
}

func (it *invocation) only() string {
	return it.values.GetString("only")
}

func (it *invocation) names() (string, bool) {
	return it.values.GetString("names"), it.values.IsSet("names")
}

// reportError logs a failed subcommand, adding a hint for the errors a user can act on.
func reportError(action string, err error) {
	switch {
	case errors.Is(err, entities.ErrValidationFailure):
		logger.Errorf("%s rejected: %v", action, err)
	case errors.Is(err, entities.ErrDirtyWorkspace):
		logger.Errorf("%s aborted: %v (commit or stash them, or drop --require-clean)", action, err)
	case errors.Is(err, entities.ErrNotFound):
		logger.Errorf("%s failed: %v (check --root and the tool directories)", action, err)
	default:
		logger.Errorf("%s failed: %v", action, err)
	}
}

// addVersionFlags adds the target version flags to a rewriting subcommand.
func addVersionFlags(cmd *cobra.Command, bumps bool) {
	cmd.Flags().String("set-version", "", "Version to write (e.g. 1.2.3.4)")
	if bumps {
		cmd.Flags().String("bump", "", "Bump each item's current version instead (major, minor, patch, revision)")
	}
}
