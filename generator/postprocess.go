package generator

import (
	"regexp"
	"strings"
)

// FallbackContent replaces an empty provider answer. It is a success, not an error.
const FallbackContent = "No content generated. Please try again."

var titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// PostProcess trims the provider output and substitutes FallbackContent when
// nothing usable came back.
func PostProcess(raw string) string {
	md := strings.TrimSpace(raw)
	if md == "" {
		return FallbackContent
	}
	return md
}

// Headline returns the first level-one markdown heading, or "".
func Headline(md string) string {
	m := titleRe.FindStringSubmatch(md)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
