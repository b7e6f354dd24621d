// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and collapses", "  John   Smith ", "john smith"},
		{"strips generational suffix", "John Smith Jr.", "john smith"},
		{"strips senior suffix", "Robert Jones Sr.", "robert jones"},
		{"strips roman numerals", "Henry Ford III", "henry ford"},
		{"strips doctoral title", "Dr. Jane Doe", "jane doe"},
		{"strips phd", "Jane Doe PhD", "jane doe"},
		{"strips dotted phd", "Jane Doe, Ph.D.", "jane doe"},
		{"strips professor title", "Prof. Alan Turing", "alan turing"},
		{"keeps hyphen", "Mary Smith-Jones", "mary smith-jones"},
		{"keeps apostrophe", "Conor O'Brien", "conor o'brien"},
		{"drops other punctuation", "J. R. Tolkien", "j r tolkien"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSuffixEquivalence(t *testing.T) {
	if Normalize("John Smith Jr.") != Normalize("John Smith") {
		t.Errorf("suffix should not change the normalized form")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		candidate string
		want      bool
	}{
		{"exact", "John Smith", "John Smith", true},
		{"exact after normalization", "Dr. John Smith", "john smith", true},
		{"initial matches full first name", "J. Smith", "John Smith", true},
		{"full first name matches initial", "John Smith", "J Smith", true},
		{"different first names rejected", "John Smith", "Jane Smith", false},
		{"different last names rejected", "John Smith", "John Smythe", false},
		{"similar long first names accepted", "Jonathan Smith", "Jonathon Smith", true},
		{"dissimilar first names rejected", "Gregory Smith", "Miranda Smith", false},
		{"middle initial compatible", "John A. Smith", "John Andrew Smith", true},
		{"middle names disagree", "John Andrew Smith", "John Bernard Smith", false},
		{"one side missing middle name", "John Smith", "John Andrew Smith", true},
		{"single token rejected", "Smith", "John Smith", false},
		{"both single tokens rejected", "Smith", "Smith", true}, // equal after normalization
		{"empty names rejected", "", "", false},
		{"case insensitive", "JOHN SMITH", "john smith", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.canonical, tt.candidate); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.canonical, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchIsSymmetricForCommonCases(t *testing.T) {
	pairs := [][2]string{
		{"J. Smith", "John Smith"},
		{"John A. Smith", "John Andrew Smith"},
		{"Mary Smith-Jones", "Mary Smith-Jones"},
	}
	for _, p := range pairs {
		if Match(p[0], p[1]) != Match(p[1], p[0]) {
			t.Errorf("Match(%q, %q) is not symmetric", p[0], p[1])
		}
	}
}

func TestExact(t *testing.T) {
	if !Exact("Dr. John Smith", "John Smith PhD") {
		t.Errorf("Exact should ignore titles and suffixes")
	}
	if Exact("John Smith", "Jane Smith") {
		t.Errorf("Exact should reject different names")
	}
	if Exact("", "") {
		t.Errorf("Exact should reject empty names")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"jonathan", "jonathan", 1, 1},
		{"jonathan", "jonathon", 0.8, 0.95},
		{"john", "jane", 0, 0.6},
		{"", "", 1, 1},
	}
	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Similarity(%q, %q) = %v, want in [%v, %v]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}
