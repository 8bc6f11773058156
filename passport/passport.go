// Package passport scans passport records for required and valid fields.
//
// A record is a run of whitespace-separated "key:value" tokens. Fields:
//
//	byr  birth year       1920–2002
//	iyr  issue year       2010–2020
//	eyr  expiration year  2020–2030
//	hgt  height           150–193cm or 59–76in
//	hcl  hair colour      #rrggbb, lowercase hex
//	ecl  eye colour       amb blu brn gry grn hzl oth
//	pid  passport ID      nine digits
//	cid  country ID       optional, never checked
//
// Unknown keys are ignored. A repeated key keeps the last value.
package passport

import (
	"strings"
)

// Field is a named value with the Rule that validates it.
type Field struct {
	Name     string
	Value    string
	Present  bool
	Optional bool
	Rule     Rule
}

// Valid reports whether the field is acceptable: optional fields always
// are; required ones must be present and pass their Rule.
func (f Field) Valid() bool {
	if f.Optional {
		return true
	}

	return f.Present && f.Rule(f.Value)
}

// Passport is one record, fields in schema order.
type Passport struct {
	Fields []Field
}

// schema builds a fresh, empty field list.
func schema() []Field {
	return []Field{
		{Name: "byr", Rule: YearBetween(1920, 2002)},
		{Name: "iyr", Rule: YearBetween(2010, 2020)},
		{Name: "eyr", Rule: YearBetween(2020, 2030)},
		{Name: "hgt", Rule: Height},
		{Name: "hcl", Rule: HairColor},
		{Name: "ecl", Rule: EyeColor},
		{Name: "pid", Rule: PassportID},
		{Name: "cid", Rule: Any, Optional: true},
	}
}

// New returns a Passport with every field unset.
func New() *Passport {
	return &Passport{Fields: schema()}
}

// Parse reads one record. It never fails: malformed tokens and unknown
// keys are skipped, and missing fields show up in Complete.
func Parse(record string) (*Passport, error) {
	p := New()
	for _, tok := range strings.Fields(record) {
		key, val, ok := strings.Cut(tok, ":")
		if !ok {
			continue
		}
		p.Set(key, val)
	}

	return p, nil
}

// Set stores val under key. It reports false for unknown keys.
func (p *Passport) Set(key, val string) bool {
	f := p.Field(key)
	if f == nil {
		return false
	}
	f.Value, f.Present = val, true

	return true
}

// Field returns the named field, or nil.
func (p *Passport) Field(name string) *Field {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i]
		}
	}

	return nil
}

// Complete reports whether every required field is present.
func (p *Passport) Complete() bool {
	for _, f := range p.Fields {
		if !f.Optional && !f.Present {
			return false
		}
	}

	return true
}

// Valid reports whether every field passes its Rule.
func (p *Passport) Valid() bool {
	for _, f := range p.Fields {
		if !f.Valid() {
			return false
		}
	}

	return true
}

// Count returns how many passports satisfy check, e.g.
// Count(ps, (*Passport).Valid).
func Count(ps []*Passport, check func(*Passport) bool) int {
	n := 0
	for _, p := range ps {
		if check(p) {
			n++
		}
	}

	return n
}
