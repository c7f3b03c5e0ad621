package nuspec

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/xmlfile"
)

const (
	versionTag    = "version"
	dependencyTag = "dependency"
	idAttr        = "id"
	versionAttr   = "version"
)

// PackageSpecRepository reads and rewrites the version and dependency
// elements of .nuspec package specs.
type PackageSpecRepository struct{}

// NewPackageSpecRepository creates a new PackageSpecRepository.
func NewPackageSpecRepository() *PackageSpecRepository {
	return &PackageSpecRepository{}
}

// GetVersion returns the metadata version of the package spec.
func (it *PackageSpecRepository) GetVersion(specPath string) (string, error) {
	doc, err := xmlfile.Load(specPath)
	if err != nil {
		return "", err
	}

	for _, el := range doc.ElementsByTag(versionTag) {
		if version := xmlfile.TrimmedText(el); version != "" {
			return version, nil
		}
	}
	return "", nil
}

// SetVersion replaces the metadata version of the package spec.
func (it *PackageSpecRepository) SetVersion(specPath, newVersion string) (bool, error) {
	doc, err := xmlfile.Load(specPath)
	if err != nil {
		return false, err
	}

	changed := false
	for _, el := range doc.ElementsByTag(versionTag) {
		current := xmlfile.TrimmedText(el)
		if current == "" || current == newVersion {
			continue
		}
		if setErr := doc.SetText(el, newVersion); setErr != nil {
			return false, setErr
		}
		changed = true
	}
	if !changed {
		return false, nil
	}
	return doc.Save()
}

// SetDependencyVersion replaces the version of every dependency on dependencyID.
func (it *PackageSpecRepository) SetDependencyVersion(specPath, dependencyID, newVersion string) (bool, error) {
	doc, err := xmlfile.Load(specPath)
	if err != nil {
		return false, err
	}

	changed := false
	for _, el := range doc.ElementsByTag(dependencyTag) {
		if xmlfile.AttrValue(el, idAttr) != dependencyID {
			continue
		}
		if xmlfile.AttrValue(el, versionAttr) == newVersion {
			continue
		}
		if setErr := doc.SetAttr(el, versionAttr, newVersion); setErr != nil {
			return false, setErr
		}
		changed = true
	}
	if !changed {
		return false, nil
	}

	logger.Debugf("Setting dependency %s to %s in %s", dependencyID, newVersion, specPath)
	return doc.Save()
}
