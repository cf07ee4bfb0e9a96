// Package cliutil holds argv helpers shared by the command-line front ends.
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SequenceExts are the file suffixes picked up when a directory is given.
// A trailing ".gz" is ignored when matching.
var SequenceExts = []string{".fa", ".fasta", ".fna", ".fas", ".seq", ".txt"}

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so
// flags may follow file names. "-" is stdin, "--" ends flags and "--x=y"
// carries its own value. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !boolFlags[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// IsSequenceFile reports whether name carries one of SequenceExts,
// optionally gzipped.
func IsSequenceFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(strings.ToLower(name), ".gz")))
	for _, e := range SequenceExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ExpandPositionals resolves input arguments into file paths: globs are
// expanded, directories contribute their sequence files (sorted, not
// recursive) and "-" passes through. Duplicates are dropped, keeping the
// first occurrence; stdin may be given only once.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, a := range posArgs {
		switch {
		case a == "-":
			if seen[a] {
				return nil, errors.New("stdin ('-') given more than once")
			}
			add(a)
		case hasGlobMeta(a):
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			for _, p := range m {
				add(p)
			}
		default:
			files, err := dirFiles(a)
			if err != nil {
				return nil, err
			}
			if files == nil {
				add(a)
				continue
			}
			if len(files) == 0 {
				return nil, fmt.Errorf("no sequence files in directory %q", a)
			}
			for _, p := range files {
				add(p)
			}
		}
	}
	return out, nil
}

// dirFiles lists the sequence files of path when it is a directory, and
// returns nil when it is not. Missing paths are left for the reader to
// report.
func dirFiles(path string) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		return nil, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", path, err)
	}
	files := []string{}
	for _, e := range entries {
		if e.Type().IsRegular() && IsSequenceFile(e.Name()) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
