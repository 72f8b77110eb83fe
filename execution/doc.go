// SPDX-License-Identifier: MIT

// Package execution runs catalog algorithms on behalf of callers and keeps
// the resulting traces around for later retrieval.
//
// Overview:
//
//	Service.Execute decodes and runs one algorithm through the dispatch
//	package, truncates the finished trace to the requested step budget, and
//	persists it as an Execution under a fresh UUID. Truncation is the only
//	form of cancellation: engines always run to completion, and the trace is
//	cut afterwards.
//
//	Two Store implementations are provided. MemoryStore keeps executions in
//	a map guarded by a RWMutex and expires them lazily. RedisStore writes
//	each execution as a JSON value with a TTL and maintains a sorted-set
//	index scored by expiry time for listing.
//
// Errors:
//
//	ErrNotFound         - unknown or expired execution ID.
//	ErrInvalidMaxSteps  - negative step budget in a Request.
//	ErrEmptyID          - Create called with an execution lacking an ID.
package execution
