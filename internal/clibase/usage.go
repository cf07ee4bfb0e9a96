// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqstats/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, option blocks).
func UsageCommon(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		// Shared block
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --log-level string      Log level: debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
