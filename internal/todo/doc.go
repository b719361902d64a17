// Package todo implements the task store: an ordered list of tasks loaded
// whole from a backend, mutated in memory and written back whole.
//
// Tasks are addressed by their 1-based position at command time. Deleting
// tasks shifts the index of every task after them.
package todo
