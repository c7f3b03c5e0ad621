package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProjectFilter     = "*.csproj"
	DefaultNuspecFilter      = "*.nuspec"
	DefaultNugetConfigFilter = "packages.config"
	DefaultBuildToolDir      = `C:\Program Files (x86)\MSBuild\14.0\Bin`
)

// Settings is the filter configuration every resolver and coordinator
// receives explicitly.
type Settings struct {
	RootDir                 string   `yaml:"root_dir"`
	ProjectFilter           string   `yaml:"project_filter"`            // Glob for project manifests
	NuspecFilter            string   `yaml:"nuspec_filter"`             // Glob for package specifications
	NugetConfigFilter       string   `yaml:"nuget_config_filter"`       // Glob for package lock files
	ReferenceAssemblyFilter string   `yaml:"reference_assembly_filter"` // Comma-separated assembly names
	ReferenceNugetFilter    string   `yaml:"reference_nuget_filter"`    // Comma-separated package ids
	AssemblyVersion         string   `yaml:"assembly_version"`
	NugetVersion            string   `yaml:"nuget_version"`
	NugetOutput             string   `yaml:"nuget_output"`   // Directory receiving packed packages
	NugetToolDir            string   `yaml:"nuget_tool_dir"` // Directory holding the packaging tool
	BuildToolDir            string   `yaml:"build_tool_dir"` // Directory holding the build tool
	Exclude                 []string `yaml:"exclude"`        // Directory globs skipped while scanning
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		ProjectFilter:     DefaultProjectFilter,
		NuspecFilter:      DefaultNuspecFilter,
		NugetConfigFilter: DefaultNugetConfigFilter,
		BuildToolDir:      DefaultBuildToolDir,
		Exclude:           []string{".git"},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables in directory values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ExpandEnv()
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".refbump.yaml",
		".refbump.yml",
		"refbump.yaml",
		"refbump.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ExpandEnv resolves ${VAR} references in every directory-valued field.
func (s *Settings) ExpandEnv() {
	s.RootDir = expandEnv(s.RootDir)
	s.NugetOutput = expandEnv(s.NugetOutput)
	s.NugetToolDir = expandEnv(s.NugetToolDir)
	s.BuildToolDir = expandEnv(s.BuildToolDir)
}

// Validate checks for the values every scan needs.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.RootDir) == "" {
		return fmt.Errorf("%w: root directory should be not empty", ErrValidationFailure)
	}
	if s.ProjectFilter == "" || s.NuspecFilter == "" || s.NugetConfigFilter == "" {
		return fmt.Errorf("%w: filter pattern should be not empty", ErrValidationFailure)
	}
	return nil
}

// AssemblyNames returns the trimmed, non-empty names of ReferenceAssemblyFilter.
func (s *Settings) AssemblyNames() []string {
	return SplitNames(s.ReferenceAssemblyFilter)
}

// NugetNames returns the trimmed, non-empty ids of ReferenceNugetFilter.
func (s *Settings) NugetNames() []string {
	return SplitNames(s.ReferenceNugetFilter)
}

// SplitNames splits a comma-separated list, keeping the listed order.
func SplitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
