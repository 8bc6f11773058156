// Package password checks corporate password policies.
//
// Each input line reads "<a>-<b> <letter>: <password>". The two numbers
// mean different things under the two rules:
//
//   - ValidCount:    the letter occurs at least a and at most b times
//   - ValidPosition: exactly one of the 1-based positions a and b holds
//     the letter
package password

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned for lines that do not match the policy layout.
var ErrMalformed = errors.New("password: malformed policy line")

var lineRe = regexp.MustCompile(`^(\d+)-(\d+) ([[:alpha:]]): (.*)$`)

// Policy is one parsed input line.
type Policy struct {
	Lo, Hi   int
	Letter   byte
	Password string
}

// Rule decides whether a Policy's password complies.
type Rule func(Policy) bool

// Parse reads a single policy line.
func Parse(line string) (Policy, error) {
	m := lineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Policy{}, errors.Wrapf(ErrMalformed, "%q", line)
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Policy{}, errors.Wrapf(ErrMalformed, "lower bound %q: %v", m[1], err)
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Policy{}, errors.Wrapf(ErrMalformed, "upper bound %q: %v", m[2], err)
	}

	return Policy{Lo: lo, Hi: hi, Letter: m[3][0], Password: m[4]}, nil
}

// ValidCount reports whether Letter occurs between Lo and Hi times.
func (p Policy) ValidCount() bool {
	n := strings.Count(p.Password, string(p.Letter))

	return n >= p.Lo && n <= p.Hi
}

// ValidPosition reports whether exactly one of positions Lo and Hi
// (1-based) holds Letter. Positions outside the password never match.
func (p Policy) ValidPosition() bool {
	return p.at(p.Lo) != p.at(p.Hi)
}

func (p Policy) at(pos int) bool {
	if pos < 1 || pos > len(p.Password) {
		return false
	}

	return p.Password[pos-1] == p.Letter
}

// CountValid returns how many policies satisfy rule.
func CountValid(policies []Policy, rule Rule) int {
	n := 0
	for _, p := range policies {
		if rule(p) {
			n++
		}
	}

	return n
}
