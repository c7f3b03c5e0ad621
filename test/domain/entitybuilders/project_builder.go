//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// ProjectBuilder helps create test projects and assembly artifacts with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	name      string
	path      string
	version   string
	consumers []entities.RefAssembly
}

// NewProjectBuilder creates a new project builder with sensible defaults.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "Lib",
		path:        "/repo/Lib/Lib.csproj",
		version:     "1.0.0.0",
	}
}

// WithName sets the project or assembly name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.name = name
	return b
}

// WithPath sets the manifest path.
func (b *ProjectBuilder) WithPath(path string) *ProjectBuilder {
	b.path = path
	return b
}

// WithVersion sets the assembly, file and informational versions.
func (b *ProjectBuilder) WithVersion(version string) *ProjectBuilder {
	b.version = version
	return b
}

// WithConsumer adds a consumer manifest referencing the project at refVersion.
func (b *ProjectBuilder) WithConsumer(name, path, refVersion string) *ProjectBuilder {
	b.consumers = append(b.consumers, entities.RefAssembly{
		Item:       entities.Item{Name: name, Path: path},
		RefVersion: refVersion,
	})
	return b
}

// Build creates the project (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildProject()
}

// BuildProject creates the project with a concrete return type.
func (b *ProjectBuilder) BuildProject() entities.Project {
	consumers := make([]entities.RefAssembly, len(b.consumers))
	copy(consumers, b.consumers)
	return entities.Project{
		Item:                 entities.Item{Name: b.name, Path: b.path},
		AssemblyVersion:      b.version,
		FileVersion:          b.version,
		InformationalVersion: b.version,
		Consumers:            consumers,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "Lib"
	b.path = "/repo/Lib/Lib.csproj"
	b.version = "1.0.0.0"
	b.consumers = nil
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	consumers := make([]entities.RefAssembly, len(b.consumers))
	copy(consumers, b.consumers)
	return &ProjectBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		path:        b.path,
		version:     b.version,
		consumers:   consumers,
	}
}
