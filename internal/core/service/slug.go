package service

import (
	"strconv"
	"strings"
	"unicode"
)

// slugify lowers name and collapses every non-alphanumeric run into a single
// hyphen. An empty or fully symbolic name yields "item" so slugs are never
// blank.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "item"
	}
	return slug
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
