package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation_Names(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid name", "Ana", true},
		{"minimum length", "Al", true},
		{"too short", "A", false},
		{"empty required", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStringValidation(tt.value).
				WithMinLength(NameMinLength).
				WithMaxLength(NameMaxLength).
				Validate()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringValidation_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid email", "ana.torres@example.com", true},
		{"missing domain", "ana@", false},
		{"uppercase rejected before normalization", "ANA@EXAMPLE.COM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStringValidation(tt.value).
				WithPattern(CompiledPatterns.Email).
				Validate()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringValidation_Phone(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"+34600111222", true},
		{"600111222", true},
		{"call me", false},
		{"123", false},
	}

	for _, tt := range tests {
		got := NewStringValidation(tt.value).
			WithPattern(CompiledPatterns.Phone).
			Validate()
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestStringValidation_OptionalEmptyPasses(t *testing.T) {
	got := NewStringValidation("").
		WithRequired(false).
		WithPattern(CompiledPatterns.Email).
		Validate()
	assert.True(t, got)
}
