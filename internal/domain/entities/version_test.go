//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected int
		ok       bool
	}{
		{name: "should order by the semantic core", a: "1.10.0", b: "1.9.0", expected: 1, ok: true},
		{name: "should order by the revision", a: "1.2.3.4", b: "1.2.3.10", expected: -1, ok: true},
		{name: "should treat a missing revision as zero", a: "1.2.3", b: "1.2.3.0", expected: 0, ok: true},
		{name: "should not order non numeric versions", a: "1.2.3-beta", b: "1.2.3", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result, ok := entities.CompareVersions(tt.a, tt.b)

			// then
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsDowngrade(t *testing.T) {
	t.Parallel()

	t.Run("should detect a lower target", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.True(t, entities.IsDowngrade("2.0.0.0", "1.9.9.9"))
		assert.False(t, entities.IsDowngrade("1.0.0.0", "2.0.0.0"))
		assert.False(t, entities.IsDowngrade("unknown", "1.0.0"))
	})
}
