package gui

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugValidator_NoSpace(t *testing.T) {
	v := NewSlugValidator(false)

	cases := []struct {
		proposed string
		want     bool
	}{
		{"", true},
		{"abc", true},
		{"ABC_def-123", true},
		{"a b", false},
		{" ", false},
		{"a!", false},
		{"a.b", false},
		{"héllo", false},
	}

	for _, c := range cases {
		if got := v.Validate(c.proposed, ""); got != c.want {
			t.Errorf("Validate(%q) = %v, want %v", c.proposed, got, c.want)
		}
	}
}

func TestSlugValidator_WithSpace(t *testing.T) {
	v := NewSlugValidator(true)

	cases := []struct {
		proposed string
		want     bool
	}{
		{"", true},
		{"abc def", true},
		{"A-b _1", true},
		{" ", false},
		{"a!", false},
	}

	for _, c := range cases {
		if got := v.Validate(c.proposed, ""); got != c.want {
			t.Errorf("Validate(%q) = %v, want %v", c.proposed, got, c.want)
		}
	}
}

func TestSlugValidator_TrailingSpaceAtFullLength(t *testing.T) {
	v := NewSlugValidator(true)

	full := strings.Repeat("a", 19) + " "
	if v.Validate(full, "") {
		t.Errorf("Expected %q (len 20, trailing space) to be rejected", full)
	}

	over := strings.Repeat("a", 25) + " "
	if v.Validate(over, "") {
		t.Errorf("Expected %q (over full length, trailing space) to be rejected", over)
	}

	interior := strings.Repeat("a", 10) + " " + strings.Repeat("b", 9)
	if !v.Validate(interior, "") {
		t.Errorf("Expected %q (interior space at full length) to be accepted", interior)
	}

	short := "abc "
	if !v.Validate(short, "") {
		t.Errorf("Expected %q (short, trailing space) to be accepted", short)
	}
}

func TestSlugValidator_IgnoresPrevious(t *testing.T) {
	v := NewSlugValidator(false)

	if v.Validate("a b", "a") {
		t.Error("Expected rejection regardless of the previous value")
	}
	if !v.Validate("ab", "not even a slug!") {
		t.Error("Expected acceptance regardless of the previous value")
	}
}

func TestMaxLen(t *testing.T) {
	v := MaxLen(3)

	if !v("abc", "") {
		t.Error("Expected value at the limit to be accepted")
	}
	if v("abcd", "") {
		t.Error("Expected value over the limit to be rejected")
	}
	if !v("héé", "") {
		t.Error("Expected rune count, not byte count, to be limited")
	}
}

func TestMatch(t *testing.T) {
	v := Match(regexp.MustCompile("^[0-9]+$"))

	if !v("123", "") {
		t.Error("Expected matching value to be accepted")
	}
	if v("12a", "") {
		t.Error("Expected non-matching value to be rejected")
	}
	if !v("", "") {
		t.Error("Expected empty value to be accepted")
	}
}

func TestAllOf(t *testing.T) {
	v := AllOf(MaxLen(5), Match(regexp.MustCompile("^[a-z]+$")))

	if !v("abc", "") {
		t.Error("Expected value satisfying all validators to be accepted")
	}
	if v("abcdef", "") {
		t.Error("Expected value failing the length validator to be rejected")
	}
	if v("ABC", "") {
		t.Error("Expected value failing the pattern validator to be rejected")
	}
}
