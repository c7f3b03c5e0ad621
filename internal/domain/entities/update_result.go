package entities

import "strings"

// UpdateResult is the outcome of rewriting a single item during a batch.
type UpdateResult[T any] struct {
	Data               T
	Error              string
	SourceArtifactName string // Artifact whose version change produced this result
}

// NewUpdateResult creates a successful result for the given item.
func NewUpdateResult[T any](data T, sourceArtifactName string) UpdateResult[T] {
	return UpdateResult[T]{Data: data, SourceArtifactName: sourceArtifactName}
}

// HasError reports whether the rewrite failed.
func (r UpdateResult[T]) HasError() bool {
	return strings.TrimSpace(r.Error) != ""
}

// CountErrors returns how many results carry an error.
func CountErrors[T any](results []UpdateResult[T]) int {
	count := 0
	for _, result := range results {
		if result.HasError() {
			count++
		}
	}
	return count
}
