// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	scriptOrStyleRe = regexp.MustCompile(`(?is)<(script|style)[^>]*?>.*?</(script|style)>`)
	tagRe           = regexp.MustCompile(`<[a-zA-Z/!?][^>]*>?`)
	octetRe         = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	entityRe        = regexp.MustCompile(`&.+?;`)
	nonStrictRe     = regexp.MustCompile(`(?i)[^a-z0-9 _.\-@]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Letters NFD cannot decompose into a base letter plus marks.
var ligatureReplacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
)

// NewLoginSanitizer returns the login policy used by the service.
// In strict mode only [A-Za-z0-9 _.-@] survive.
func NewLoginSanitizer(strict bool) LoginSanitizer {
	return func(raw string) string {
		return SanitizeLogin(raw, strict)
	}
}

// SanitizeLogin normalizes a login the way the platform does on sign-up:
// markup is stripped, accents are folded to ASCII, percent-encoded octets and
// HTML entities are dropped, surrounding whitespace is trimmed and inner runs
// of whitespace collapse to a single space.
//
// The result may be empty; callers treat that as a missing value.
func SanitizeLogin(raw string, strict bool) string {
	s := stripTags(raw)
	s = removeAccents(s)
	s = octetRe.ReplaceAllString(s, "")
	s = entityRe.ReplaceAllString(s, "")
	if strict {
		s = nonStrictRe.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)

	return whitespaceRe.ReplaceAllString(s, " ")
}

// Slug derives the URL-friendly form of a login: lowercase, spaces replaced
// by hyphens.
func Slug(login string) string {
	return strings.ReplaceAll(strings.ToLower(login), " ", "-")
}

func stripTags(s string) string {
	s = scriptOrStyleRe.ReplaceAllString(s, "")
	return tagRe.ReplaceAllString(s, "")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return ligatureReplacer.Replace(folded)
}
