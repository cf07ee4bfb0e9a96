// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Common holds CLI fields shared by seqstats and seqstats-server.
type Common struct {
	LogLevel string
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common, defaultLevel string) {
	fs.StringVar(&c.LogLevel, "log-level", defaultLevel, "log level: debug | info | warn | error ["+defaultLevel+"]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")
}

// sliceValue appends each value to a *[]string (repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// StringSlice returns a flag.Value appending to dst.
func StringSlice(dst *[]string) flag.Value { return &sliceValue{dst: dst} }

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "off":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	return nil
}

// NonNegative returns an error naming the flag when v < 0.
func NonNegative(name string, v int) error {
	if v < 0 {
		return errors.New("--" + name + " must be ≥ 0")
	}
	return nil
}
