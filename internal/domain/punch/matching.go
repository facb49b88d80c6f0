package punch

import "strings"

// CanonicalName folds case and strips all whitespace from a punch-log name,
// producing the key used for identity matching.
func CanonicalName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// NameKeys builds the four canonical keys for an employee: first+last and
// last+first, each with and without a separating space. After
// CanonicalName the spaced and unspaced forms collapse to the same key, so
// two distinct keys remain; all four are kept to mirror the matching
// contract exactly.
func NameKeys(firstName, lastName string) []string {
	return []string{
		CanonicalName(firstName + lastName),
		CanonicalName(firstName + " " + lastName),
		CanonicalName(lastName + firstName),
		CanonicalName(lastName + " " + firstName),
	}
}

// Matches reports whether a punch-log name refers to the employee with the
// given name keys. Strict equality on canonical keys, never fuzzy.
func Matches(punchName string, keys []string) bool {
	canonical := CanonicalName(punchName)
	for _, k := range keys {
		if canonical == k {
			return true
		}
	}
	return false
}
