//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// StubListPackageSpecs is a stub implementation of commands.ListPackageSpecs.
type StubListPackageSpecs struct {
	ExecuteCallCount int
	ExecuteErr       error
	Specs            []entities.PackageSpec
}

var _ commands.ListPackageSpecs = (*StubListPackageSpecs)(nil)

func (s *StubListPackageSpecs) Execute(_ context.Context, _ *entities.Settings) ([]entities.PackageSpec, error) {
	s.ExecuteCallCount++
	return s.Specs, s.ExecuteErr
}

// StubUpdatePackageSpecVersions is a stub implementation of commands.UpdatePackageSpecVersions.
type StubUpdatePackageSpecVersions struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.UpdateResult[entities.PackageSpec]
	LastSpecs        []entities.PackageSpec
	LastVersion      entities.VersionInfo
}

var _ commands.UpdatePackageSpecVersions = (*StubUpdatePackageSpecVersions)(nil)

func (s *StubUpdatePackageSpecVersions) Execute(
	_ context.Context,
	_ *entities.Settings,
	specs []entities.PackageSpec,
	version entities.VersionInfo,
	_ entities.UpdateOptions,
) ([]entities.UpdateResult[entities.PackageSpec], error) {
	s.ExecuteCallCount++
	s.LastSpecs = specs
	s.LastVersion = version
	return s.Results, s.ExecuteErr
}
