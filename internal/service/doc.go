// Package service contains the per-family analyzers executed by
// background workers: outcome alignment, semantic diff, summarization,
// relation extraction and OCR. Each analyzer is a pure computation over
// its inputs plus calls into the opaque model capabilities, returning a
// result payload for the task record.
package service
