// Package parallel runs independent image tasks on a small worker pool.
//
// Tasks handed to the pool must own the memory they write: a blur pass
// gives each task its own rows or columns, so no locking is needed and the
// result does not depend on scheduling.
package parallel
