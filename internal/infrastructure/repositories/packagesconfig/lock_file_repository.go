package packagesconfig

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/xmlfile"
)

const (
	packageTag  = "package"
	idAttr      = "id"
	versionAttr = "version"
)

// LockFileRepository reads and rewrites packages.config lock files. When a
// pin changes, the HintPath install paths of the sibling manifest follow it.
type LockFileRepository struct {
	scanner   repositories.FileScanner
	manifests repositories.ManifestRepository
}

// NewLockFileRepository creates a new LockFileRepository.
func NewLockFileRepository(
	scanner repositories.FileScanner,
	manifests repositories.ManifestRepository,
) *LockFileRepository {
	return &LockFileRepository{scanner: scanner, manifests: manifests}
}

// ListDeclaredPackages returns the package ids declared in the lock file.
func (it *LockFileRepository) ListDeclaredPackages(lockPath string) ([]string, error) {
	doc, err := xmlfile.Load(lockPath)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, el := range doc.ElementsByTag(packageTag) {
		if id := xmlfile.AttrValue(el, idAttr); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// GetPackageVersion returns the declared version of id, or "" when it is not declared.
func (it *LockFileRepository) GetPackageVersion(lockPath, id string) (string, error) {
	doc, err := xmlfile.Load(lockPath)
	if err != nil {
		return "", err
	}

	for _, el := range doc.ElementsByTag(packageTag) {
		if xmlfile.AttrValue(el, idAttr) == id {
			return xmlfile.AttrValue(el, versionAttr), nil
		}
	}
	return "", nil
}

// SetPackageVersion changes the declared version of id and updates the install
// path of the manifest next to the lock file.
func (it *LockFileRepository) SetPackageVersion(
	lockPath, id, newVersion, manifestFilter string,
) (entities.LockFileChange, error) {
	var change entities.LockFileChange

	doc, err := xmlfile.Load(lockPath)
	if err != nil {
		return change, err
	}

	dirty := false
	for _, el := range doc.ElementsByTag(packageTag) {
		if xmlfile.AttrValue(el, idAttr) != id {
			continue
		}
		change.Changed = true
		if xmlfile.AttrValue(el, versionAttr) != newVersion {
			if setErr := doc.SetAttr(el, versionAttr, newVersion); setErr != nil {
				return change, setErr
			}
			dirty = true
		}
	}
	if !change.Changed {
		return change, nil
	}
	if dirty {
		if _, saveErr := doc.Save(); saveErr != nil {
			return change, saveErr
		}
	}

	manifest, err := it.scanner.FindFirst(filepath.Dir(lockPath), manifestFilter)
	if err != nil {
		return change, err
	}
	if manifest == "" {
		logger.Debugf("No manifest next to %s, install paths left untouched", lockPath)
		return change, nil
	}

	change.SiblingManifest = manifest
	if _, err = it.manifests.UpdateInstallPathVersion(manifest, id, newVersion); err != nil {
		return change, err
	}
	return change, nil
}
