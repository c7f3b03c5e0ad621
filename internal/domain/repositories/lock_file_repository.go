package repositories

import "github.com/rios0rios0/refbump/internal/domain/entities"

// LockFileRepository reads and rewrites the package entries of a lock file.
type LockFileRepository interface {
	ListDeclaredPackages(lockPath string) ([]string, error)
	GetPackageVersion(lockPath, id string) (string, error)

	// SetPackageVersion rewrites every entry for id and, when one changed, the
	// install paths of the first manifestFilter match beside the lock file.
	SetPackageVersion(lockPath, id, newVersion, manifestFilter string) (entities.LockFileChange, error)
}
