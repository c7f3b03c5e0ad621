package msbuild

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/xmlfile"
)

const (
	// Namespace is the XML namespace of classic project manifests.
	Namespace = "http://schemas.microsoft.com/developer/msbuild/2003"

	referenceTag    = "Reference"
	includeAttr     = "Include"
	hintPathTag     = "HintPath"
	versionKey      = "Version"
	packagesSegment = "packages"
)

// ManifestRepository reads and rewrites Reference elements of .csproj manifests.
type ManifestRepository struct{}

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// GetReferenceVersion returns the Version= segment of the reference named name, or "" when none matches.
func (it *ManifestRepository) GetReferenceVersion(manifestPath, name string) (string, error) {
	doc, err := load(manifestPath)
	if err != nil {
		return "", err
	}

	for _, ref := range doc.ElementsByTag(referenceTag) {
		include, ok := parseInclude(xmlfile.AttrValue(ref, includeAttr))
		if ok && strings.EqualFold(include.name(), name) {
			if version, found := include.version(); found {
				return version, nil
			}
		}
	}
	return "", nil
}

// ChangeReferenceVersion rewrites the Version= segment of the reference named name.
func (it *ManifestRepository) ChangeReferenceVersion(manifestPath, name, newVersion string) (bool, error) {
	doc, err := load(manifestPath)
	if err != nil {
		return false, err
	}

	for _, ref := range doc.ElementsByTag(referenceTag) {
		attr := ref.SelectAttr(includeAttr)
		if attr == nil {
			continue
		}
		include, ok := parseInclude(attr.Value)
		if !ok || !strings.EqualFold(include.name(), name) {
			continue
		}
		current, found := include.version()
		if !found {
			continue
		}
		if current == newVersion {
			return false, nil
		}

		if setErr := doc.SetAttr(ref, includeAttr, include.withVersion(newVersion)); setErr != nil {
			return false, setErr
		}
		if _, saveErr := doc.Save(); saveErr != nil {
			return false, saveErr
		}
		logger.Debugf("Changed reference %s in %s from %s to %s", name, manifestPath, current, newVersion)
		return true, nil
	}
	return false, nil
}

// UpdateInstallPathVersion rewrites the package folder version inside the hint path of the reference.
func (it *ManifestRepository) UpdateInstallPathVersion(manifestPath, name, newVersion string) (bool, error) {
	doc, err := load(manifestPath)
	if err != nil {
		return false, err
	}

	changed := false
	for _, ref := range doc.ElementsByTag(referenceTag) {
		include := strings.Split(xmlfile.AttrValue(ref, includeAttr), ",")
		if !strings.EqualFold(strings.TrimSpace(include[0]), name) {
			continue
		}
		for _, hint := range ref.ChildElements() {
			if hint.Tag != hintPathTag {
				continue
			}
			if updated, ok := rewriteHintPath(hint.Text(), name, newVersion); ok {
				if setErr := doc.SetText(hint, updated); setErr != nil {
					return false, setErr
				}
				changed = true
				break
			}
		}
	}
	if !changed {
		return false, nil
	}
	return doc.Save()
}

func load(manifestPath string) (*xmlfile.Document, error) {
	doc, err := xmlfile.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	if space := doc.Root().NamespaceURI(); space != "" && space != Namespace {
		logger.Debugf("Manifest %s uses namespace %q", manifestPath, space)
	}
	return doc, nil
}

// include is an Include attribute split into its comma separated segments,
// e.g. "Lib, Version=1.0.0.0, Culture=neutral".
type include []string

func parseInclude(value string) (include, bool) {
	segments := strings.Split(value, ",")
	if len(segments) < 2 {
		return nil, false
	}
	return segments, true
}

func (i include) name() string {
	return strings.TrimSpace(i[0])
}

func (i include) versionIndex() int {
	for index, segment := range i[1:] {
		key, _, found := strings.Cut(segment, "=")
		if found && strings.EqualFold(strings.TrimSpace(key), versionKey) {
			return index + 1
		}
	}
	return -1
}

func (i include) version() (string, bool) {
	index := i.versionIndex()
	if index < 0 {
		return "", false
	}
	_, value, _ := strings.Cut(i[index], "=")
	return strings.TrimSpace(value), true
}

func (i include) withVersion(newVersion string) string {
	segments := make([]string, len(i))
	copy(segments, i)
	index := i.versionIndex()
	key, _, _ := strings.Cut(segments[index], "=")
	segments[index] = key + "=" + newVersion
	return strings.Join(segments, ",")
}

// rewriteHintPath replaces the version inside the path segment that follows
// the "packages" folder, e.g. ..\packages\Foo.1.2.3\lib becomes ..\packages\Foo.1.2.4\lib.
func rewriteHintPath(hintPath, name, newVersion string) (string, bool) {
	separator := "\\"
	if !strings.Contains(hintPath, separator) {
		separator = "/"
	}

	segments := strings.Split(hintPath, separator)
	for index, segment := range segments {
		if segment != packagesSegment || index+1 >= len(segments) {
			continue
		}
		updated, ok := rewritePackageFolder(segments[index+1], name, newVersion)
		if !ok || updated == segments[index+1] {
			return "", false
		}
		segments[index+1] = updated
		return strings.Join(segments, separator), true
	}
	return "", false
}

func rewritePackageFolder(folder, name, newVersion string) (string, bool) {
	prefix := name + "."
	if len(folder) > len(prefix) && strings.EqualFold(folder[:len(prefix)], prefix) {
		return folder[:len(prefix)] + newVersion, true
	}
	index := strings.IndexAny(folder, "0123456789")
	if index < 0 {
		return "", false
	}
	return folder[:index] + newVersion, true
}
