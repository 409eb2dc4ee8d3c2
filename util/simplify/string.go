package simplify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// regEx represents every character to remove from name before comparsion
var regEx = regexp.MustCompile("[" +
	// All control characters such as \x00
	"[:cntrl:]" +
	// All blank (whitespace) characters
	"[:space:]" +
	// All punctuation characters (except the + symbol: prevents 'Name 2' == 'Name (+2)')
	"-!\"#$%&'()*,./:;<=>?@[\\]^_`{|}~" +
	"]+")

// stripAccents represents transformation dropping combining marks: "Nestlé" becomes "Nestle"
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name returns simplified <inp> (lowercase, no special characters)
func Name(inp string) string {
	out := strings.ToLower(inp)
	return regEx.ReplaceAllString(out, "")
}

// Key returns simplified <inp> without accents, usable to compare firm names written differently
func Key(inp string) string {
	out, _, err := transform.String(stripAccents, inp)
	if err != nil {
		out = inp
	}
	return Name(out)
}
