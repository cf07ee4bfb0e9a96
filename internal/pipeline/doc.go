// Package pipeline normalizes and analyzes raw sequences on a bounded worker
// pool. Results come back to the visit callback in job order whatever the
// scheduling, and sequences that clean to nothing arrive as results
// carrying perr.ErrEmptySequence rather than aborting the run.
package pipeline
