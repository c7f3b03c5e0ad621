package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	BumpMajor    = "major"
	BumpMinor    = "minor"
	BumpPatch    = "patch"
	BumpRevision = "revision"

	coreSegments = 3
)

// versionPattern accepts three or more dot-separated numeric segments.
var versionPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+(\.\d+)*)$`)

// VersionInfo is the target of a batch run: either an explicit version or
// a bump directive applied to each item's current version.
type VersionInfo struct {
	Version string
	Bump    string
}

// NewVersionInfo creates a VersionInfo for an explicit version.
func NewVersionInfo(version string) VersionInfo {
	return VersionInfo{Version: version}
}

// ValidateVersion checks the numeric-dot format required for every written version.
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return fmt.Errorf("%w: version should be not empty", ErrValidationFailure)
	}
	if !versionPattern.MatchString(version) {
		return fmt.Errorf("%w: version input incorrect format %q", ErrValidationFailure, version)
	}
	return nil
}

// Validate checks that exactly one usable target is present.
func (v VersionInfo) Validate() error {
	if v.Version != "" {
		return ValidateVersion(v.Version)
	}
	switch v.Bump {
	case BumpMajor, BumpMinor, BumpPatch, BumpRevision:
		return nil
	case "":
		return fmt.Errorf("%w: version should be not empty", ErrValidationFailure)
	default:
		return fmt.Errorf("%w: unknown bump %q (major, minor, patch, revision)", ErrValidationFailure, v.Bump)
	}
}

// ValidateExplicit is Validate for batches where no current version exists
// to bump from, such as reference rewrites.
func (v VersionInfo) ValidateExplicit() error {
	if v.Version == "" && v.Bump != "" {
		return fmt.Errorf("%w: bump is not supported here, an explicit version is required", ErrValidationFailure)
	}
	return ValidateVersion(v.Version)
}

// ResolveFor returns the version to write for an item currently at current.
func (v VersionInfo) ResolveFor(current string) (string, error) {
	if v.Version != "" {
		return v.Version, nil
	}
	return BumpVersion(current, v.Bump)
}

// BumpVersion increments one segment of a numeric-dot version. Segments after
// the bumped one are reset to zero and the segment count is preserved.
func BumpVersion(current, part string) (string, error) {
	if err := ValidateVersion(current); err != nil {
		return "", fmt.Errorf("cannot bump %q: %w", current, err)
	}
	segments := strings.Split(current, ".")

	if part == BumpRevision {
		if len(segments) == coreSegments {
			return current + ".1", nil
		}
		revision, err := strconv.Atoi(segments[coreSegments])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrValidationFailure, current)
		}
		segments[coreSegments] = strconv.Itoa(revision + 1)
		for i := coreSegments + 1; i < len(segments); i++ {
			segments[i] = "0"
		}
		return strings.Join(segments, "."), nil
	}

	core, err := semver.StrictNewVersion(strings.Join(segments[:coreSegments], "."))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrValidationFailure, current, err)
	}

	var next semver.Version
	switch part {
	case BumpMajor:
		next = core.IncMajor()
	case BumpMinor:
		next = core.IncMinor()
	case BumpPatch:
		next = core.IncPatch()
	default:
		return "", fmt.Errorf("%w: unknown bump %q", ErrValidationFailure, part)
	}

	result := next.String()
	if extra := len(segments) - coreSegments; extra > 0 {
		result += strings.Repeat(".0", extra)
	}
	return result, nil
}
