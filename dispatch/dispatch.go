// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an identifier missing from the catalog.
	ErrUnknownAlgorithm = errors.New("dispatch: unknown algorithm")

	// ErrInvalidShape indicates a missing or ill-typed input parameter.
	ErrInvalidShape = errors.New("dispatch: invalid input shape")
)

var index = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[e.ID] = i
	}
	return m
}()

// Catalog returns every algorithm in stable order.
func Catalog() []Algorithm {
	out := make([]Algorithm, len(catalog))
	for i, e := range catalog {
		out[i] = e.Algorithm
	}
	return out
}

// Lookup returns the algorithm registered under id.
func Lookup(id string) (Algorithm, error) {
	i, ok := index[id]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	return catalog[i].Algorithm, nil
}

// Run decodes input for algorithm id, runs the engine and returns its trace.
func Run(ctx context.Context, id string, input map[string]any) (step.Trace, error) {
	i, ok := index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}
	trace, err := catalog[i].run(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return trace, nil
}
