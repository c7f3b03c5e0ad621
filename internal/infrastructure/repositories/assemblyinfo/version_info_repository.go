package assemblyinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/refbump/internal/domain/repositories"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/fileutil"
)

const (
	// PropertiesDir and FileName locate the info file relative to the project directory.
	PropertiesDir = "Properties"
	FileName      = "AssemblyInfo.cs"

	informationalMarker = "AssemblyInformationalVersion"
	assemblyMarker      = "AssemblyVersion"
	fileMarker          = "AssemblyFileVersion"
	commentPrefix       = "//"
	quote               = `"`
)

// VersionInfoRepository reads and rewrites the version attributes of a
// project's Properties/AssemblyInfo.cs.
type VersionInfoRepository struct {
	scanner repositories.FileScanner
}

// NewVersionInfoRepository creates a new VersionInfoRepository.
func NewVersionInfoRepository(scanner repositories.FileScanner) *VersionInfoRepository {
	return &VersionInfoRepository{scanner: scanner}
}

// Locate returns the Properties/AssemblyInfo.cs next to the manifest, or "" when there is none.
func (it *VersionInfoRepository) Locate(manifestPath string) (string, error) {
	return it.scanner.FindFirst(filepath.Join(filepath.Dir(manifestPath), PropertiesDir), FileName)
}

// Read returns the version attributes declared in the info file.
func (it *VersionInfoRepository) Read(infoPath string) (repositories.AssemblyVersions, error) {
	var versions repositories.AssemblyVersions

	data, err := os.ReadFile(infoPath)
	if err != nil {
		return versions, fmt.Errorf("failed to read %s: %w", infoPath, err)
	}
	content, _ := fileutil.SplitBOM(data)

	for _, line := range strings.Split(string(content), "\n") {
		if isComment(line) {
			continue
		}
		value, _, ok := quotedLiteral(line)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(line, informationalMarker):
			versions.InformationalVersion = value
		case strings.Contains(line, assemblyMarker):
			versions.AssemblyVersion = value
		case strings.Contains(line, fileMarker):
			versions.FileVersion = value
		}
	}
	return versions, nil
}

// Write sets every version attribute of the info file to newVersion.
func (it *VersionInfoRepository) Write(infoPath, newVersion string) (bool, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", infoPath, err)
	}
	content, bom := fileutil.SplitBOM(data)

	lines := strings.Split(string(content), "\n")
	for index, line := range lines {
		if isComment(line) || !hasMarker(line) {
			continue
		}
		_, start, ok := quotedLiteral(line)
		if !ok {
			continue
		}
		end := start + strings.Index(line[start:], quote)
		lines[index] = line[:start] + newVersion + line[end:]
	}

	return fileutil.WriteIfChanged(infoPath, fileutil.JoinBOM([]byte(strings.Join(lines, "\n")), bom))
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentPrefix)
}

func hasMarker(line string) bool {
	return strings.Contains(line, informationalMarker) ||
		strings.Contains(line, assemblyMarker) ||
		strings.Contains(line, fileMarker)
}

// quotedLiteral returns the first double-quoted literal of line and the offset where its content starts.
func quotedLiteral(line string) (string, int, bool) {
	open := strings.Index(line, quote)
	if open < 0 {
		return "", 0, false
	}
	start := open + 1
	length := strings.Index(line[start:], quote)
	if length < 0 {
		return "", 0, false
	}
	return line[start : start+length], start, true
}
