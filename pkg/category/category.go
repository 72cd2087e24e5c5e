// Copyright (c) 2026 ArtFolio. All rights reserved.

/*
Package category converts between URL-facing category slugs and their
stored display names.

Categories are persisted as human-readable display names (e.g. "Graphic
Design") but travel through URLs as kebab-case slugs (e.g.
"graphic-design"). This package handles both directions of that mapping.
*/
package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var titleCaser = cases.Title(language.English)

// DisplayName converts a kebab-case URL slug into its stored display form.
//
// # Transformation Pipeline
//
// 1. Replaces hyphens with spaces ("graphic-design" → "graphic design").
// 2. Title-cases each word ("graphic design" → "Graphic Design").
func DisplayName(slug string) string {
	spaced := strings.ReplaceAll(slug, "-", " ")
	return titleCaser.String(spaced)
}

// Slug converts a display name into its kebab-case URL form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and strips combining marks (é → e).
// 2. Converts to lowercase.
// 3. Replaces non-alphanumeric runs with single hyphens.
// 4. Trims leading/trailing hyphens.
func Slug(name string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, name)

	result = strings.ToLower(result)

	var builder strings.Builder
	builder.Grow(len(result))
	lastHyphen := true
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			builder.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.Trim(builder.String(), "-")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
