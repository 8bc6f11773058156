// Package customs tallies customs declaration answers.
//
// A group is a block of lines, one per person; each line lists the
// questions (letters) that person answered "yes" to.
package customs

import "strings"

// Answers is the set of questions one person answered.
type Answers map[rune]struct{}

// Group is the answers of every person in one group.
type Group struct {
	People []Answers
}

// ParseGroup reads one block. Blank lines inside the block are skipped.
func ParseGroup(block string) (Group, error) {
	var g Group
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a := make(Answers, len(line))
		for _, r := range line {
			a[r] = struct{}{}
		}
		g.People = append(g.People, a)
	}

	return g, nil
}

// Anyone counts questions answered by at least one person.
func (g Group) Anyone() int {
	union := make(Answers)
	for _, p := range g.People {
		for r := range p {
			union[r] = struct{}{}
		}
	}

	return len(union)
}

// Everyone counts questions answered by every person. An empty group
// counts zero.
func (g Group) Everyone() int {
	if len(g.People) == 0 {
		return 0
	}
	n := 0
	for r := range g.People[0] {
		all := true
		for _, p := range g.People[1:] {
			if _, ok := p[r]; !ok {
				all = false
				break
			}
		}
		if all {
			n++
		}
	}

	return n
}

// SumAnyone adds Anyone over all groups.
func SumAnyone(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Anyone()
	}

	return total
}

// SumEveryone adds Everyone over all groups.
func SumEveryone(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Everyone()
	}

	return total
}
