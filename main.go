package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"time"
)

var (
	version, commit = "???", "???"

	showVersion bool
	fullMode    bool
)

const (
	appEnvKey      = "CAPSTAMP_APP"
	defaultAppFile = "app.py"
)

var extraHelp = `
If %s is found in the environment, it overrides the default target file (%s).
`

func main() {
	exe := path.Base(os.Args[0])
	flag.BoolVar(&showVersion, "version", false, "show version and exit")
	flag.BoolVar(&fullMode, "full", false, "refresh last_updated_str and write the update banner caption")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options]\nOptions:\n", exe)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, extraHelp, appEnvKey, defaultAppFile)
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("%s version %s (commit %s)\n", exe, version, commit)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: too many arguments\n")
		os.Exit(1)
	}

	if err := run(os.Stdout, appFileName(), fullMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func appFileName() string {
	if p := os.Getenv(appEnvKey); p != "" {
		return p
	}

	return defaultAppFile
}

// run rewrites the caption line of fileName (and, in full mode, the
// last_updated_str line) and prints the new caption to w. A file with no
// matching lines is left as is and still counts as success.
func run(w io.Writer, fileName string, full bool) error {
	now := time.Now()
	caption := newCaption(now, shortID(), full)

	var rules []rule
	if full {
		rules = append(rules, updatedRule(timeStamp(now)))
	}
	rules = append(rules, captionRule(caption, full))

	if err := updateFile(fileName, rules); err != nil {
		return err
	}

	fmt.Fprintf(w, "Updated caption to: %s\n", caption)
	return nil
}
