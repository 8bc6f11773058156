package passport

import (
	"regexp"
	"slices"
	"strconv"
)

// Rule reports whether a field value is acceptable.
type Rule func(value string) bool

var (
	yearRe   = regexp.MustCompile(`^[0-9]{4}$`)
	heightRe = regexp.MustCompile(`^([0-9]+)(cm|in)$`)
	hexRe    = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	pidRe    = regexp.MustCompile(`^[0-9]{9}$`)
)

// eyeColors lists the accepted ecl values.
var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

// YearBetween accepts four-digit years in [lo, hi].
func YearBetween(lo, hi int) Rule {
	return func(v string) bool {
		if !yearRe.MatchString(v) {
			return false
		}
		y, err := strconv.Atoi(v)

		return err == nil && y >= lo && y <= hi
	}
}

// Height accepts 150-193cm or 59-76in.
func Height(v string) bool {
	m := heightRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "cm":
		return n >= 150 && n <= 193
	case "in":
		return n >= 59 && n <= 76
	}

	return false
}

// HairColor accepts '#' followed by six lowercase hex digits.
func HairColor(v string) bool { return hexRe.MatchString(v) }

// EyeColor accepts one of the seven known colour codes.
func EyeColor(v string) bool { return slices.Contains(eyeColors, v) }

// PassportID accepts exactly nine digits, leading zeros included.
func PassportID(v string) bool { return pidRe.MatchString(v) }

// Any accepts every value.
func Any(string) bool { return true }
