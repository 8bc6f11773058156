package main

import (
	"github.com/anacrolix/log"
	"github.com/pkg/errors"

	"github.com/katalvlaran/adventofcode/boarding"
	"github.com/katalvlaran/adventofcode/customs"
	"github.com/katalvlaran/adventofcode/expense"
	"github.com/katalvlaran/adventofcode/input"
	"github.com/katalvlaran/adventofcode/password"
	"github.com/katalvlaran/adventofcode/passport"
	"github.com/katalvlaran/adventofcode/toboggan"
)

// Answers holds both parts of a day.
type Answers struct {
	One, Two int
}

// solver reads the file at path and computes both answers.
type solver func(path string, logger log.Logger) (Answers, error)

var solvers = map[int]solver{
	1: day1,
	2: day2,
	3: day3,
	4: day4,
	5: day5,
	6: day6,
}

func day1(path string, logger log.Logger) (a Answers, err error) {
	entries, err := input.Parse(path, input.Lines, input.Int)
	if err != nil {
		return
	}
	logger.Levelf(log.Debug, "loaded %d expense entries", len(entries))
	if a.One, err = expense.PairProduct(entries, expense.Year); err != nil {
		return
	}
	a.Two, err = expense.TripleProduct(entries, expense.Year)

	return
}

func day2(path string, logger log.Logger) (Answers, error) {
	policies, err := input.Parse(path, input.Lines, password.Parse)
	if err != nil {
		return Answers{}, err
	}
	logger.Levelf(log.Debug, "loaded %d password policies", len(policies))

	return Answers{
		One: password.CountValid(policies, password.Policy.ValidCount),
		Two: password.CountValid(policies, password.Policy.ValidPosition),
	}, nil
}

func day3(path string, logger log.Logger) (a Answers, err error) {
	rows, err := input.Parse(path, input.Lines, input.Text)
	if err != nil {
		return
	}
	g, err := toboggan.NewGrid(rows)
	if err != nil {
		return a, errors.Wrap(err, "building grid")
	}
	logger.Levelf(log.Debug, "grid is %dx%d", g.Width, g.Height)
	if a.One, err = g.CountTrees(toboggan.DefaultSlope); err != nil {
		return
	}
	a.Two, err = g.Product(toboggan.SurveySlopes...)

	return
}

func day4(path string, logger log.Logger) (Answers, error) {
	ps, err := input.Parse(path, input.Blocks, passport.Parse)
	if err != nil {
		return Answers{}, err
	}
	logger.Levelf(log.Debug, "loaded %d passports", len(ps))

	return Answers{
		One: passport.Count(ps, (*passport.Passport).Complete),
		Two: passport.Count(ps, (*passport.Passport).Valid),
	}, nil
}

func day5(path string, logger log.Logger) (a Answers, err error) {
	seats, err := input.Parse(path, input.Lines, boarding.Parse)
	if err != nil {
		return
	}
	logger.Levelf(log.Debug, "decoded %d boarding passes", len(seats))
	a.One = boarding.MaxID(seats)
	a.Two, err = boarding.FindVacant(seats)

	return
}

func day6(path string, logger log.Logger) (Answers, error) {
	groups, err := input.Parse(path, input.Blocks, customs.ParseGroup)
	if err != nil {
		return Answers{}, err
	}
	logger.Levelf(log.Debug, "loaded %d customs groups", len(groups))

	return Answers{
		One: customs.SumAnyone(groups),
		Two: customs.SumEveryone(groups),
	}, nil
}
