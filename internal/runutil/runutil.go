// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads maps the --threads value onto a worker count:
// 0 means all CPUs, and there is never more than one worker per job.
func EffectiveThreads(threads, jobs int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if jobs > 0 && threads > jobs {
		threads = jobs
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

// WindowWarning returns a warning when a requested window cannot be
// evaluated over a sequence of length n, or "" when it can. A window of 0
// is "off" and never warns.
func WindowWarning(flag string, window, n int) string {
	if window > 0 && window > n {
		return fmt.Sprintf("%s (%d) is wider than the sequence (%d bp); windowed metrics unavailable", flag, window, n)
	}
	return ""
}

// NeedSkew tells the runner whether to compute the GC-skew profile.
// Only the skew table renders it on the command line.
func NeedSkew(output string) bool { return output == "skew" }
