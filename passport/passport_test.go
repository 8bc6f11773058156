package passport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/input"
	"github.com/katalvlaran/adventofcode/passport"
)

const batch = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func parseBatch(t *testing.T, text string) []*passport.Passport {
	t.Helper()
	ps, err := input.Split(text, input.Blocks, passport.Parse)
	require.NoError(t, err)

	return ps
}

func TestComplete(t *testing.T) {
	ps := parseBatch(t, batch)
	require.Len(t, ps, 4)
	assert.Equal(t, []bool{true, false, true, false},
		[]bool{ps[0].Complete(), ps[1].Complete(), ps[2].Complete(), ps[3].Complete()})
	assert.Equal(t, 2, passport.Count(ps, (*passport.Passport).Complete))
}

func TestValid(t *testing.T) {
	bad := parseBatch(t, invalid)
	good := parseBatch(t, valid)
	assert.Equal(t, 0, passport.Count(bad, (*passport.Passport).Valid))
	assert.Equal(t, 4, passport.Count(good, (*passport.Passport).Valid))
}

func TestParse_IgnoresJunk(t *testing.T) {
	p, err := passport.Parse("foo:bar nocolon byr:1950 byr:1960")
	require.NoError(t, err)
	assert.Equal(t, "1960", p.Field("byr").Value, "last value wins")
	assert.Nil(t, p.Field("foo"))
	assert.False(t, p.Set("foo", "bar"))
}

func TestField_Optional(t *testing.T) {
	p := passport.New()
	cid := p.Field("cid")
	require.NotNil(t, cid)
	assert.True(t, cid.Valid(), "cid is valid even when absent")
	assert.False(t, p.Field("byr").Valid(), "required field absent")
}
