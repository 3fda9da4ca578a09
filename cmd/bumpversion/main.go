// Stamp version and commit into main.go before a release.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/mod/semver"
)

var stampRE = regexp.MustCompile(`(version, commit = )"[^"]*", "[^"]*"`)

func main() {
	var version, commit, fileName string
	flag.StringVar(&version, "version", "", "version string")
	flag.StringVar(&commit, "commit", "", "commit hash")
	flag.StringVar(&fileName, "file", "main.go", "file to stamp")
	flag.Parse()

	if version == "" || commit == "" {
		fmt.Fprintf(os.Stderr, "error: both -version and -commit are required\n")
		os.Exit(1)
	}

	if !semver.IsValid(version) {
		fmt.Fprintf(os.Stderr, "error: %q is not a valid semantic version\n", version)
		os.Exit(1)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	out := stampRE.ReplaceAll(data, fmt.Appendf(nil, `${1}%q, %q`, version, commit))
	if err := os.WriteFile(fileName, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stamped %s with version %s (commit %s)\n", fileName, version, commit)
}
