package main

import (
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// rule rewrites the quoted portion of the first line matching re. Pattern
// based, not syntax aware.
type rule struct {
	re   *regexp.Regexp
	repl string
}

var (
	captionRE = regexp.MustCompile(`(st\.caption\()f?"[^"]*"(\))`)
	updatedRE = regexp.MustCompile(`(last_updated_str\s*=\s*)"[^"]*"`)
)

func captionRule(caption string, full bool) rule {
	quote := `"`
	if full {
		quote = `f"`
	}

	return rule{
		re:   captionRE,
		repl: `${1}` + quote + caption + `"${2}`,
	}
}

func updatedRule(ts string) rule {
	return rule{
		re:   updatedRE,
		repl: `${1}"` + ts + `"`,
	}
}

// rewriteLine replaces the match of r in line, reporting whether it matched.
func rewriteLine(line string, r rule) (string, bool) {
	if !r.re.MatchString(line) {
		return line, false
	}

	return r.re.ReplaceAllString(line, r.repl), true
}

// updateFile applies each rule to the first line it matches and writes the
// file back in place. The original goes to a sibling .bak file for the
// duration of the edit. Rules that match nothing leave the file unchanged.
func updateFile(fileName string, rules []rule) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(fileName); err == nil {
		mode = info.Mode()
	}

	bakName := fileName + ".bak"
	if err := os.WriteFile(bakName, data, mode); err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	for _, r := range rules {
		for i, line := range lines {
			if out, ok := rewriteLine(line, r); ok {
				lines[i] = out
				break
			}
		}
	}

	if err := os.WriteFile(fileName, []byte(strings.Join(lines, "\n")), mode); err != nil {
		return err
	}

	if err := os.Remove(bakName); err != nil {
		slog.Warn("can't remove backup", "file", bakName, "error", err)
	}

	return nil
}
