package entities

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// CompareVersions orders two numeric-dot versions. The second return value
// is false when either side is not a numeric-dot version, since version
// strings are opaque until compared.
func CompareVersions(a, b string) (int, bool) {
	coreA, restA, okA := splitVersion(a)
	coreB, restB, okB := splitVersion(b)
	if !okA || !okB {
		return 0, false
	}

	if c := semver.Compare(coreA, coreB); c != 0 {
		return c, true
	}

	for i := 0; i < len(restA) || i < len(restB); i++ {
		var x, y int
		if i < len(restA) {
			x = restA[i]
		}
		if i < len(restB) {
			y = restB[i]
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
	}
	return 0, true
}

// IsDowngrade reports whether moving from current to target lowers the version.
func IsDowngrade(current, target string) bool {
	c, ok := CompareVersions(target, current)
	return ok && c < 0
}

// splitVersion turns "1.2.3.4" into the canonical semver core "v1.2.3" plus
// the numeric segments that follow it.
func splitVersion(version string) (string, []int, bool) {
	if !versionPattern.MatchString(version) {
		return "", nil, false
	}

	segments := strings.Split(version, ".")
	numbers := make([]int, len(segments))
	for i, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil {
			return "", nil, false
		}
		numbers[i] = n
	}

	core := fmt.Sprintf("v%d.%d.%d", numbers[0], numbers[1], numbers[2])
	if !semver.IsValid(core) {
		return "", nil, false
	}
	return core, numbers[coreSegments:], true
}
