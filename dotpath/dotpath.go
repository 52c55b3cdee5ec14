// Package dotpath resolves dot-separated field paths against decoded JSON
// trees, such as the records returned by the AMPLE APIs.
//
// A path is a sequence of segments joined by '.'. Mapping nodes are selected
// by key. Sequence nodes fan out: a segment applied to a sequence is applied
// to every element in order, so "authors.name" reaches the name of every
// author without an explicit index. A segment that is a non-negative integer
// selects a single sequence element instead.
//
// Resolution always yields a slice, because a path may legitimately match any
// number of values; use One to unwrap a result that is known to be single.
package dotpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrPath indicates a malformed path expression.
	ErrPath = errors.New("dotpath: malformed path")

	// ErrCardinality indicates a result with an unexpected number of values.
	ErrCardinality = errors.New("dotpath: unexpected number of values")
)

// Resolve returns every value reachable from node by path, in document order.
//
// A mapping branch that lacks a segment's key, or holds null under it,
// contributes nothing; resolution never fails on missing data, only on a
// malformed path. Scalar branches that still have segments left to apply also
// contribute nothing. The input tree is never modified.
func Resolve(node any, path string) ([]any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, path)
		}
	}

	current := []any{node}
	for _, segment := range segments {
		var next []any
		for _, branch := range current {
			next = append(next, step(branch, segment)...)
		}
		current = next
	}

	if current == nil {
		current = []any{}
	}
	return current, nil
}

// step applies a single segment to one candidate node.
func step(node any, segment string) []any {
	switch n := node.(type) {
	case map[string]any:
		value, ok := n[segment]
		if !ok || value == nil {
			return nil
		}
		return []any{value}

	case []any:
		if index, err := strconv.Atoi(segment); err == nil && index >= 0 {
			if index >= len(n) || n[index] == nil {
				return nil
			}
			return []any{n[index]}
		}

		var values []any
		for _, element := range n {
			values = append(values, step(element, segment)...)
		}
		return values

	default:
		return nil
	}
}

// One unwraps a resolution result that must contain exactly one value.
// It fails with ErrCardinality for empty and for multi-valued results.
func One(values []any) (any, error) {
	switch len(values) {
	case 0:
		return nil, fmt.Errorf("%w: no values", ErrCardinality)
	case 1:
		return values[0], nil
	default:
		return nil, fmt.Errorf("%w: %d values", ErrCardinality, len(values))
	}
}
