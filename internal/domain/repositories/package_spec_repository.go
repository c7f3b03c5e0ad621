package repositories

// PackageSpecRepository reads and rewrites package specification files.
type PackageSpecRepository interface {
	GetVersion(specPath string) (string, error)
	SetVersion(specPath, newVersion string) (bool, error)

	// SetDependencyVersion rewrites every dependency on dependencyID, not only the first.
	SetDependencyVersion(specPath, dependencyID, newVersion string) (bool, error)
}
