// Package task implements the asynchronous task lifecycle shared by
// every analysis family: deterministic task identifiers, a background
// runner with a worker pool, and the store contract for task records.
//
// A task moves through pending -> processing -> completed|failed.
// Terminal records are written exactly once and never mutated; the
// runner is the only writer for a given task id.
package task
