package pandoc

import (
	"regexp"
	"strings"
)

var versionRe = regexp.MustCompile(`(\d+(?:\.\d+)+)`)

// parseVersion extracts the numeric version from pandoc version output.
// Expected format examples:
//
//	pandoc 3.1.9
//	pandoc.exe 2.19.2
//	Features: +server +lua
//
// Returns "" if no version-looking token is found.
func parseVersion(output string) string {
	firstLine, _, _ := strings.Cut(output, "\n")
	matches := versionRe.FindStringSubmatch(firstLine)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}
