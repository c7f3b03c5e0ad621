//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// SettingsBuilder helps create test settings on top of the defaults.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder rooted at /repo.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.Reset()
	return b
}

// WithRootDir sets the scan root.
func (b *SettingsBuilder) WithRootDir(root string) *SettingsBuilder {
	b.settings.RootDir = root
	return b
}

// WithAssemblies sets the comma-separated assembly names.
func (b *SettingsBuilder) WithAssemblies(names string) *SettingsBuilder {
	b.settings.ReferenceAssemblyFilter = names
	return b
}

// WithPackages sets the comma-separated package ids.
func (b *SettingsBuilder) WithPackages(ids string) *SettingsBuilder {
	b.settings.ReferenceNugetFilter = ids
	return b
}

// WithTools sets the build tool, packaging tool and output directories.
func (b *SettingsBuilder) WithTools(buildToolDir, nugetToolDir, nugetOutput string) *SettingsBuilder {
	b.settings.BuildToolDir = buildToolDir
	b.settings.NugetToolDir = nugetToolDir
	b.settings.NugetOutput = nugetOutput
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	settings.Exclude = append([]string(nil), b.settings.Exclude...)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.DefaultSettings()
	b.settings.RootDir = "/repo"
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    *b.BuildSettings(),
	}
}
