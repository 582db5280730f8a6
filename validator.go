package gui

import "regexp"

// ValidateFunc judges a prospective text entry value. It receives the
// proposed value and the value it would replace, and reports whether the
// edit may be committed.
type ValidateFunc func(proposed, previous string) bool

// slugMaxLen is the longest slug a text entry will grow to.
const slugMaxLen = 20

var (
	slugPattern      = regexp.MustCompile("^[A-Za-z0-9_-]+$")
	slugSpacePattern = regexp.MustCompile("^[A-Za-z0-9_ -]+$")
)

// SlugValidator accepts short identifier-like strings: letters, digits,
// underscore and hyphen, optionally with interior spaces.
type SlugValidator struct {
	allowSpace bool
}

// NewSlugValidator creates a slug validator. With allowSpace the space
// character is permitted inside the value, though a value can never
// consist of a single space and can never end in a space once it has
// reached full length.
func NewSlugValidator(allowSpace bool) *SlugValidator {
	return &SlugValidator{allowSpace: allowSpace}
}

// Validate reports whether the proposed value is an acceptable slug.
// The empty string is always acceptable, so the user can clear the entry.
func (v *SlugValidator) Validate(proposed, previous string) bool {
	if proposed == " " {
		return false
	}
	runes := []rune(proposed)
	if len(runes) >= slugMaxLen && runes[len(runes)-1] == ' ' {
		return false
	}
	if proposed == "" {
		return true
	}
	if v.allowSpace {
		return slugSpacePattern.MatchString(proposed)
	}
	return slugPattern.MatchString(proposed)
}

// MaxLen returns a validator that rejects values longer than n runes.
func MaxLen(n int) ValidateFunc {
	return func(proposed, previous string) bool {
		return len([]rune(proposed)) <= n
	}
}

// Match returns a validator that accepts the empty string and any value
// matching the pattern.
func Match(pattern *regexp.Regexp) ValidateFunc {
	return func(proposed, previous string) bool {
		return proposed == "" || pattern.MatchString(proposed)
	}
}

// AllOf combines validators; a proposed value must satisfy all of them.
func AllOf(fns ...ValidateFunc) ValidateFunc {
	return func(proposed, previous string) bool {
		for _, fn := range fns {
			if !fn(proposed, previous) {
				return false
			}
		}
		return true
	}
}
