// Package image implements image upload and the public gallery on top of a
// storage.Gateway.
package image

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TimestampLayout sorts lexicographically in chronological order.
const TimestampLayout = "20060102T150405"

// fallbackName replaces a filename that sanitizes to nothing.
const fallbackName = "upload"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// ObjectName returns "<UTC timestamp>-<sanitized filename>".
func ObjectName(now time.Time, filename string) string {
	return now.UTC().Format(TimestampLayout) + "-" + SanitizeFilename(filename)
}

// SanitizeFilename reduces filename to ASCII letters, digits, '_', '.' and '-'.
// Accented letters are folded to their base letter, other non-ASCII runes are
// dropped, path separators and whitespace runs become '_', and leading or trailing
// dots and underscores are trimmed. The result is never empty.
func SanitizeFilename(filename string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, filename)
	if err != nil {
		ascii = ""
	}

	ascii = strings.NewReplacer("/", " ", `\`, " ").Replace(ascii)
	name := strings.Join(strings.Fields(ascii), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if name == "" {
		return fallbackName
	}
	return name
}
