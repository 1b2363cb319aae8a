// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reference

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: "page"},
		{name: "whitespace only", text: " \n\t ", want: "page"},
		{name: "letters only", text: "Product catalogue", want: "page"},
		{name: "punctuation only", text: "#!?.,;:-", want: "page"},
		{name: "product number", text: "Product #12345", want: "12345"},
		{name: "digits across lines", text: "Ref 12\n34\tAB-56", want: "123456"},
		{name: "non-ascii letters dropped", text: "Référence n° 789 ünïcödé", want: "789"},
		{name: "fullwidth digits folded", text: "型番 １２３", want: "123"},
		{name: "arabic-indic digits dropped", text: "رقم ٤٥٦ and 7", want: "7"},
		{name: "superscript folds to digit", text: "area m²", want: "2"},
		{name: "long digit run is not capped", text: strings.Repeat("9", 30), want: strings.Repeat("9", 30)},
		{name: "underscore kept then dropped", text: "a_1_b_2", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.text); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLabel_DigitsOnly(t *testing.T) {
	digitsOnly := regexp.MustCompile(`^[0-9]+$`)
	inputs := []string{
		"Product #12345",
		"SKU: 00-11-22 / rev. 3",
		"½ price: €9,99",
		"Ⅻ chapters, ၅ items, 8 left",
		"\x00\x01 binary 42 �",
		"page 1 of 10\n\n\n",
	}
	for _, in := range inputs {
		got := Label(in)
		if got == Fallback {
			continue
		}
		assert.Regexp(t, digitsOnly, got, "input %q", in)
	}
}

func TestLabel_NeverEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "---", "abc", "\n"} {
		assert.NotEmpty(t, Label(in))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		label string
		n     int
		want  string
	}{
		{name: "short label kept", label: "12345", n: 20, want: "12345"},
		{name: "exactly n", label: strings.Repeat("1", 20), n: 20, want: strings.Repeat("1", 20)},
		{name: "cut to n", label: "123456789012345678901234", n: 20, want: "12345678901234567890"},
		{name: "empty becomes fallback", label: "", n: 20, want: "page"},
		{name: "non-positive n keeps label", label: "123", n: 0, want: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.label, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.label, tt.n, got, tt.want)
			}
		})
	}
}
