//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ManifestCall records one rewrite request.
type ManifestCall struct {
	Path    string
	Name    string
	Version string
}

// SpyManifestRepository implements repositories.ManifestRepository over an
// in-memory map of manifest path to reference name to version.
type SpyManifestRepository struct {
	// --- GetReferenceVersion ---
	References map[string]map[string]string
	GetErrs    map[string]error

	// --- ChangeReferenceVersion ---
	ChangeErrs  map[string]error
	ChangeCalls []ManifestCall

	// --- UpdateInstallPathVersion ---
	InstallPathErr   error
	InstallPathCalls []ManifestCall
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) GetReferenceVersion(manifestPath, name string) (string, error) {
	if err := s.GetErrs[manifestPath]; err != nil {
		return "", err
	}
	return s.References[manifestPath][name], nil
}

func (s *SpyManifestRepository) ChangeReferenceVersion(manifestPath, name, newVersion string) (bool, error) {
	s.ChangeCalls = append(s.ChangeCalls, ManifestCall{Path: manifestPath, Name: name, Version: newVersion})
	if err := s.ChangeErrs[manifestPath]; err != nil {
		return false, err
	}
	current, ok := s.References[manifestPath][name]
	if !ok || current == newVersion {
		return false, nil
	}
	s.References[manifestPath][name] = newVersion
	return true, nil
}

func (s *SpyManifestRepository) UpdateInstallPathVersion(manifestPath, name, newVersion string) (bool, error) {
	s.InstallPathCalls = append(s.InstallPathCalls, ManifestCall{Path: manifestPath, Name: name, Version: newVersion})
	if s.InstallPathErr != nil {
		return false, s.InstallPathErr
	}
	return true, nil
}
