package firm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alitto/pond"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Character classes with Unicode meaning: letters and digits of any script are word characters, and every
// Unicode space separator counts as whitespace.
const (
	wordChar    = `[\p{L}\p{N}_]`
	nonWordChar = `[^\p{L}\p{N}_]`
	spaceChar   = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
)

// separators represents a run of characters glued to the left side of a suffix token
const separators = `(?:` + spaceChar + `|\.|,|&)*`

// trailer represents an optional period and an optional non-word character following a suffix token
const trailer = `\.?` + nonWordChar + `?`

// boundary marks the end of a token which has to be followed by a non-word character or the end of the name
const boundary = `\b`

// boundedTrailer represents trailer of a token ending with boundary. It only matches if the character after the token
// is not a word character, consuming it the same way trailer does.
const boundedTrailer = `(?:\.` + nonWordChar + `?|` + nonWordChar + `|$)`

// defTokens represents legal entity, technical description and firm type tokens in the order they are tried.
//
// Order matters: alternation is leftmost-first, so "Group\sInc" has to precede "Group" and "Holdings\sInc" has to
// precede "Holdings".
var defTokens = []string{
	`\.com`,
	`Enterprise`,
	`Worldwide`,
	`Int'l`,
	`N\.V\.`,
	`LLC`,
	`Co` + boundary,
	`Inc` + boundary,
	`Corp` + wordChar + `*`,
	`Group` + spaceChar + `Inc`,
	`Group`,
	`Company`,
	`Holdings` + spaceChar + `Inc`,
	nonWordChar + `Co(?:` + spaceChar + `|\.)`,
	`plc`,
	`Ltd`,
	`Int'l\.`,
	`Holdings`,
	`\(?Class` + spaceChar + wordChar + `+\)?`, // Share class, e.g. "(Class A)"
}

// alternative returns <token> followed by it's trailer
func alternative(token string) string {
	if bare, ok := strings.CutSuffix(token, boundary); ok {
		return "(?:" + bare + ")" + boundedTrailer
	}
	return "(?:" + token + ")" + trailer
}

// BadTokenError represents error thrown if suffix token is not a valid regular expression
type BadTokenError struct {
	Token  string
	Reason string
}

// Error is used to satisfy golang error interface
func (e BadTokenError) Error() string {
	return fmt.Sprintf("Bad suffix token %q: %v", e.Token, e.Reason)
}

// Normalizer represents legal name stripper built from an ordered suffix token table
type Normalizer struct {
	tokens     []string
	rx         *regexp.Regexp
	allMatches bool
}

// New returns new normalizer with default suffix tokens followed by <extra> tokens.
//
// Every token is a regular expression fragment. A trailing "\b" requires the token to end at a word boundary, where
// letters and digits of any script are word characters. Returns BadTokenError if any of <extra> is invalid.
func New(extra ...string) (Normalizer, error) {
	for _, token := range extra {
		if _, err := regexp.Compile(token); err != nil {
			return Normalizer{}, errors.Wrap(BadTokenError{Token: token, Reason: err.Error()}, "Build suffix pattern")
		}
	}
	tokens := append(append([]string{}, defTokens...), extra...)
	alternatives := lo.Map(tokens, func(token string, _ int) string { return alternative(token) })
	rx, err := regexp.Compile(separators + "(?:" + strings.Join(alternatives, "|") + ")")
	if err != nil {
		return Normalizer{}, errors.Wrap(err, "Build suffix pattern")
	}
	return Normalizer{tokens: tokens, rx: rx}, nil
}

// MustNew returns new normalizer like New does, panicking on invalid <extra> tokens
func MustNew(extra ...string) Normalizer {
	n, err := New(extra...)
	if err != nil {
		panic(err)
	}
	return n
}

// WithAllMatches returns copy of <n> which removes every non-overlapping match instead of the first one if <all> is
// true.
func (n Normalizer) WithAllMatches(all bool) Normalizer {
	n.allMatches = all
	return n
}

// Tokens returns copy of the ordered suffix token table
func (n Normalizer) Tokens() []string {
	return append([]string{}, n.tokens...)
}

// Pattern returns composed regular expression
func (n Normalizer) Pattern() string {
	return n.rx.String()
}

// Strip returns <name> without the first legal description found in it.
//
// Adjacent whitespace, periods, commas and ampersands before the description are removed with it, as well as an
// optional period and one non-word character after it.
func (n Normalizer) Strip(name string) string {
	if n.allMatches {
		return n.rx.ReplaceAllString(name, "")
	}
	loc := n.rx.FindStringIndex(name)
	if loc == nil {
		return name
	}
	return name[:loc[0]] + name[loc[1]:]
}

// StripNames returns new slice of <rawNames> stripped from legal descriptions, preserving length and order
func (n Normalizer) StripNames(rawNames []string) []string {
	return lo.Map(rawNames, func(name string, _ int) string {
		return n.Strip(name)
	})
}

// StripNamesParallel returns the same as StripNames does, spreading work across <workers> goroutines.
//
// Every result is written to the index of it's source name, so output order matches input order.
func (n Normalizer) StripNamesParallel(rawNames []string, workers int) []string {
	if workers < 2 || len(rawNames) < 2 {
		return n.StripNames(rawNames)
	}
	out := make([]string, len(rawNames))
	pool := pond.New(workers, 0, pond.MinWorkers(0))
	for idx, name := range rawNames {
		idx, name := idx, name
		pool.Submit(func() {
			out[idx] = n.Strip(name)
		})
	}
	pool.StopAndWait()
	return out
}

// defNormalizer is used by StripLegalNames
var defNormalizer = MustNew()

// StripLegalNames returns <rawNames> without legal entity, technical description or firm type, using default suffix
// tokens.
func StripLegalNames(rawNames []string) []string {
	return defNormalizer.StripNames(rawNames)
}
