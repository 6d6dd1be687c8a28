package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slugify normalizes a name into a URL-safe slug: accented characters are
// decomposed to their base letters, everything is lowercased, and runs of
// characters outside [a-z0-9] collapse to a single hyphen. Returns
// ErrEmptySlug when nothing survives normalization.
func Slugify(name string) (string, error) {
	folded, _, err := transform.String(accentStripper, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}
