//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// SpyLockFileRepository implements repositories.LockFileRepository over an
// in-memory map of lock file path to package id to version.
type SpyLockFileRepository struct {
	// --- ListDeclaredPackages / GetPackageVersion ---
	Packages map[string]map[string]string
	ListErr  error

	// --- SetPackageVersion ---
	SetErrs         map[string]error
	SetCalls        []ManifestCall
	SiblingManifest string
	OnSet           func(call ManifestCall)
}

var _ repositories.LockFileRepository = (*SpyLockFileRepository)(nil)

func (s *SpyLockFileRepository) ListDeclaredPackages(lockPath string) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var ids []string
	for id := range s.Packages[lockPath] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *SpyLockFileRepository) GetPackageVersion(lockPath, id string) (string, error) {
	return s.Packages[lockPath][id], nil
}

func (s *SpyLockFileRepository) SetPackageVersion(
	lockPath, id, newVersion, _ string,
) (entities.LockFileChange, error) {
	call := ManifestCall{Path: lockPath, Name: id, Version: newVersion}
	s.SetCalls = append(s.SetCalls, call)
	if s.OnSet != nil {
		s.OnSet(call)
	}
	if err := s.SetErrs[lockPath]; err != nil {
		return entities.LockFileChange{}, err
	}
	if _, ok := s.Packages[lockPath][id]; !ok {
		return entities.LockFileChange{}, nil
	}
	s.Packages[lockPath][id] = newVersion
	return entities.LockFileChange{Changed: true, SiblingManifest: s.SiblingManifest}, nil
}
