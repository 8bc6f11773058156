// Package adventofcode collects the 2020 puzzle solvers and the two small
// libraries they share.
//
// 🚀 What is inside?
//
//	A handful of independent daily solvers, each reading a text file and
//	printing two answers, built on:
//		• combinator — lazy pair / triple enumeration driven by an odometer
//		• input      — read a file, split it, parse every chunk into a record
//
// Packages:
//
//	combinator/ — Digit, Odometer, Pairs, Triples, Find, Sum, Seq
//	input/      — Read, Parse, Split, IOError, ParseError
//	expense/    — day 1: entries summing to 2020
//	password/   — day 2: password policies
//	toboggan/   — day 3: trees on a repeating slope map
//	passport/   — day 4: passport field checks
//	boarding/   — day 5: binary seat decoding
//	customs/    — day 6: customs declaration answers
//	cmd/aoc2020 — command line runner
//
// Quick start:
//
//	go run ./cmd/aoc2020 --inputs ./inputs 1
package adventofcode
