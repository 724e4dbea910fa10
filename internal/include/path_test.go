package include_test

import (
	"overture/internal/include"
	"reflect"
	"testing"
)

func TestNewSearchPath(t *testing.T) {
	tests := []struct {
		name         string
		documentPath string
		roots        []string
		expected     []string
	}{
		{
			name:         "document directory first",
			documentPath: "/proj/main.ly",
			roots:        []string{"/lib", "/usr/share/lilypond"},
			expected:     []string{"/proj", "/lib", "/usr/share/lilypond"},
		},
		{
			name:         "unsaved document",
			documentPath: "",
			roots:        []string{"/lib"},
			expected:     []string{"/lib"},
		},
		{
			name:         "no roots",
			documentPath: "/proj/main.ly",
			expected:     []string{"/proj"},
		},
		{
			name:         "empty",
			documentPath: "",
			expected:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := include.NewSearchPath(tt.documentPath, tt.roots)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NewSearchPath() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestNewSearchPathIdempotent verifies that identical inputs always yield
// identical, order-preserving output.
func TestNewSearchPathIdempotent(t *testing.T) {
	roots := []string{"/b", "/a", "/c"}

	first := include.NewSearchPath("/proj/main.ly", roots)
	second := include.NewSearchPath("/proj/main.ly", roots)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
	if !reflect.DeepEqual(first, []string{"/proj", "/b", "/a", "/c"}) {
		t.Errorf("expected order-preserving result, got %v", first)
	}
}
