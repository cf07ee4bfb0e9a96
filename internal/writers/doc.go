// Package writers maps output format names onto report renderers and runs
// them behind a channel so the pipeline never waits on formatting.
//
// JSONL is written as reports arrive; every other format needs the whole
// batch (JSON arrays, multi-report CSV) and renders once input closes.
package writers
