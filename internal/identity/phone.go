// Package identity provides the canonical phone key used to join records
// across data sources.
package identity

import "strings"

// Phone is a canonicalized phone number: digits only, no floating-point
// artifacts. The zero value means "absent" and never matches any other
// Phone, including another absent one.
type Phone string

// Absent is the sentinel for records with no usable phone number.
const Absent Phone = ""

// Present reports whether p carries a usable key.
func (p Phone) Present() bool { return p != Absent }

// Normalize canonicalizes a raw phone cell into a join key.
//
// Upstream sheets store phones in numeric-typed columns, so values arrive
// as "919876543210.0" or with stray whitespace; some exports render empty
// cells as "nan". Normalize trims, drops one trailing ".0", and keeps
// digits only. It is idempotent: Normalize(string(Normalize(x))) ==
// Normalize(x).
func Normalize(raw string) Phone {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Absent
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null", "<nil>":
		return Absent
	}

	s = strings.TrimSuffix(s, ".0")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Absent
	}
	return Phone(b.String())
}

// Match reports whether two raw phone strings refer to the same identity.
// Absent values match nothing.
func Match(a, b string) bool {
	pa, pb := Normalize(a), Normalize(b)
	return pa.Present() && pa == pb
}
