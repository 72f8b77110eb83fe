// SPDX-License-Identifier: MIT

// Package dispatch maps algorithm identifiers to engine calls.
//
// Run validates the input shape (every required parameter present), decodes
// the loosely typed input map into the engine's arguments with mapstructure
// (weak typing, so JSON numbers such as 3.0 decode into int), invokes the
// engine and erases the typed trace into a step.Trace.
//
// Shape problems are rejected before the engine runs and wrap
// ErrInvalidShape. Engine precondition failures (empty radix input, negative
// Dijkstra weight, ...) are returned wrapped so callers can still match the
// engine's own sentinel with errors.Is.
//
// The context is checked once before the engine call: engines are
// synchronous and always run to completion.
package dispatch
