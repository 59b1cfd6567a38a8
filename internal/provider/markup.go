package provider

import (
	"regexp"
	"strings"
	"unicode"
)

const boldColon = "{bc}"

var markupTag = regexp.MustCompile(`\{.*?\}`)

// StripMarkup removes inline formatting tokens from definition text.
// "{bc}" is dropped first, then every {...} tag. A removed tag that sat
// directly between two letters or digits leaves a single space so the
// words do not run together. The result is trimmed. StripMarkup is idempotent.
func StripMarkup(text string) string {
	text = strings.ReplaceAll(text, boldColon, "")

	matches := markupTag.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(text)
	}

	var b strings.Builder
	b.Grow(len(text))

	var last rune
	boundary := false
	write := func(s string) {
		for _, r := range s {
			if boundary && isWordRune(last) && isWordRune(r) {
				b.WriteByte(' ')
			}
			boundary = false
			b.WriteRune(r)
			last = r
		}
	}

	pos := 0
	for _, m := range matches {
		write(text[pos:m[0]])
		boundary = true
		pos = m[1]
	}
	write(text[pos:])

	return strings.TrimSpace(b.String())
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
