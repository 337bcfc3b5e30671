// Package store provides task record storage backends. The default is
// a process-local in-memory map; a sqlite backend is available when
// results should survive restarts. Both satisfy task.TaskStore.
package store
