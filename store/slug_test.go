package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"Backend Development", "backend-development"},
		{"Testing 123", "testing-123"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Special@#Characters!", "special-characters"},
		{"---Dashes---", "dashes"},
		{"Node.js & APIs", "node-js-apis"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Slugify(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	assert.Equal(t, Slugify("Intro to Go!"), Slugify("Intro to Go!"))
}

func TestSlugOr_ExplicitOverrides(t *testing.T) {
	assert.Equal(t, "custom", SlugOr("custom", "Backend Development"))
	assert.Equal(t, "backend-development", SlugOr("", "Backend Development"))
}
