package passport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/adventofcode/passport"
)

func TestRules(t *testing.T) {
	byr := passport.YearBetween(1920, 2002)
	cases := []struct {
		name  string
		rule  passport.Rule
		value string
		want  bool
	}{
		{"byr/empty", byr, "", false},
		{"byr/low", byr, "1908", false},
		{"byr/in", byr, "1921", true},
		{"byr/edge", byr, "2002", true},
		{"byr/high", byr, "2003", false},
		{"byr/digits", byr, "02002", false},

		{"hgt/cm", passport.Height, "190cm", true},
		{"hgt/cm-low", passport.Height, "149cm", false},
		{"hgt/cm-edge", passport.Height, "150cm", true},
		{"hgt/cm-high", passport.Height, "194cm", false},
		{"hgt/in", passport.Height, "60in", true},
		{"hgt/in-edge", passport.Height, "59in", true},
		{"hgt/in-high", passport.Height, "77in", false},
		{"hgt/in-as-cm", passport.Height, "190in", false},
		{"hgt/no-unit", passport.Height, "190", false},
		{"hgt/mm", passport.Height, "190mm", false},

		{"hcl/ok", passport.HairColor, "#abf123", true},
		{"hcl/short", passport.HairColor, "#123", false},
		{"hcl/upper", passport.HairColor, "#ABF123", false},
		{"hcl/no-hash", passport.HairColor, "abf123", false},
		{"hcl/bad-digit", passport.HairColor, "#123abz", false},

		{"ecl/amb", passport.EyeColor, "amb", true},
		{"ecl/oth", passport.EyeColor, "oth", true},
		{"ecl/red", passport.EyeColor, "red", false},
		{"ecl/substring", passport.EyeColor, "ambx", false},

		{"pid/ok", passport.PassportID, "000000001", true},
		{"pid/short", passport.PassportID, "02333434", false},
		{"pid/long", passport.PassportID, "0123456789", false},
		{"pid/dot", passport.PassportID, "0233.4349", false},

		{"cid/any", passport.Any, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule(tc.value), "%s(%q)", tc.name, tc.value)
		})
	}
}
