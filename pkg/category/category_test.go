// Copyright (c) 2026 ArtFolio. All rights reserved.

package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/* TestDisplayName verifies kebab-case slugs are expanded into title-cased display names. */
func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		expected string
	}{
		{name: "single word", slug: "painting", expected: "Painting"},
		{name: "two words", slug: "graphic-design", expected: "Graphic Design"},
		{name: "three words", slug: "mixed-media-art", expected: "Mixed Media Art"},
		{name: "already spaced", slug: "street art", expected: "Street Art"},
		{name: "empty", slug: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.slug))
		})
	}
}

/* TestSlug verifies display names collapse into clean kebab-case slugs. */
func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "two words", input: "Graphic Design", expected: "graphic-design"},
		{name: "accented", input: "Décor & Interiors", expected: "decor-interiors"},
		{name: "surrounding junk", input: "  Oil Painting!  ", expected: "oil-painting"},
		{name: "digits kept", input: "3D Modeling", expected: "3d-modeling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

/* TestRoundTrip verifies DisplayName and Slug are inverses for simple category names. */
func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"Photography", "Graphic Design", "Digital Art"} {
		assert.Equal(t, name, DisplayName(Slug(name)))
	}
}
