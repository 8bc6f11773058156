// Command aoc2020 solves one day of the 2020 puzzle set.
//
// Example run:
// $ go run ./cmd/aoc2020 1
// answer1: 514579
// answer2: 241861950
//
// The input defaults to inputs/dayN.txt; pass a path to override it.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/pkg/errors"
)

var logger = log.Default.WithNames("aoc2020")

// ErrUnknownDay is returned for a day with no registered solver.
var ErrUnknownDay = errors.New("no solver registered")

var args struct {
	Day    int    `arg:"positional,required" help:"puzzle day (1-6)"`
	File   string `arg:"positional" help:"input file, default INPUTS/dayN.txt"`
	Inputs string `default:"inputs" help:"directory holding dayN.txt files"`
	Debug  bool   `help:"log debug messages"`
}

func main() {
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	p := arg.MustParse(&args)
	if !args.Debug {
		logger = logger.FilterLevel(log.Info)
	}
	solve, path, err := resolve(args.Day, args.File, args.Inputs)
	if err != nil {
		p.Fail(err.Error())
	}
	logger.Levelf(log.Debug, "solving day %d from %q", args.Day, path)

	ans, err := run(args.Day, path, solve, logger)
	if err != nil {
		return err
	}
	fmt.Printf("answer1: %v\n", ans.One)
	fmt.Printf("answer2: %v\n", ans.Two)

	return nil
}

// resolve picks the solver for day and the file it reads: file when set,
// otherwise inputs/dayN.txt.
func resolve(day int, file, inputs string) (solver, string, error) {
	solve, ok := solvers[day]
	if !ok {
		return nil, "", errors.Wrapf(ErrUnknownDay, "day %d", day)
	}
	if file == "" {
		file = filepath.Join(inputs, fmt.Sprintf("day%d.txt", day))
	}

	return solve, file, nil
}

// run calls solve and prefixes any failure with the day.
func run(day int, path string, solve solver, logger log.Logger) (Answers, error) {
	ans, err := solve(path, logger)
	if err != nil {
		return Answers{}, errors.Wrapf(err, "day %d", day)
	}

	return ans, nil
}
