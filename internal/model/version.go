package model

import (
	"strconv"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Version is an ordering wrapper around a dotted version string such as
// "1.2.3". Versions that coerce to a semantic version are compared through
// github.com/Masterminds/semver/v3; anything else falls back to a loose
// segment-wise comparison so that inputs like "2021a.1" stay orderable.
type Version struct {
	raw string
	sv  *mm.Version
}

// ParseVersion wraps a raw version string. It never fails: a string that is
// not semver-coercible is still comparable via the loose rule.
func ParseVersion(raw string) Version {
	v := Version{raw: raw}
	if sv, err := mm.NewVersion(raw); err == nil {
		v.sv = sv
	}
	return v
}

// String returns the raw version string as given.
func (v Version) String() string { return v.raw }

// IsZero reports whether v is the zero Version, used for "no version given".
func (v Version) IsZero() bool { return v.raw == "" }

// Compare orders v against other, returning -1, 0 or 1. Semantic comparison
// is used only when both sides coerce to semver; mixing coercible and
// non-coercible strings compares both loosely to keep the order total.
func (v Version) Compare(other Version) int {
	if v.sv != nil && other.sv != nil {
		return v.sv.Compare(other.sv)
	}
	return looseCompare(v.raw, other.raw)
}

// looseCompare compares dot-separated segments pairwise: numeric segments
// numerically, everything else lexically. A shorter version that is a prefix
// of a longer one sorts first.
func looseCompare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if ai != bi {
				if ai < bi {
					return -1
				}
				return 1
			}
			continue
		}
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}
