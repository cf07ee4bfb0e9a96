// Package stats is the sequence-statistics engine. It operates on canonical
// sequences (uppercase A/T/G/C/N only, see package normalize) and never
// imports app, cli, writers, server or pipeline code; keep it domain-only.
//
// Every function is pure: no I/O, no globals, no hidden iterator state.
// Undefined ratios are reported as NA values, never as errors or panics.
//
// External outputs must not depend on the shape of Metrics; use pkg/api for
// the stable wire format.
package stats
