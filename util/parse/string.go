package parse

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// unsafeFileCharsRx represents every run of characters not welcome in a file name
var unsafeFileCharsRx = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

// LastPathItem returns last item in <path> split by <delim> or <path> if <delim> is empty or last item is empty
func LastPathItem(path, delim string) string {
	if delim == "" {
		return path
	}
	item, _ := lo.Last(strings.Split(path, delim))
	return lo.Ternary(item == "", path, item)
}

// FileName returns <inp> with every run of characters other than latin letters, digits, '_' and '-' replaced by
// a single '_', trimmed from '_' on both sides.
func FileName(inp string) string {
	return strings.Trim(unsafeFileCharsRx.ReplaceAllString(inp, "_"), "_")
}

// Lines returns every non-blank line of <r> with surrounding space trimmed
func Lines(r io.Reader) ([]string, error) {
	out := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, errors.Wrap(scanner.Err(), "Scan lines")
}
