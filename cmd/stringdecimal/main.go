// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stringdecimal evaluates one or more expressions against the
// stringdecimal arithmetic library and prints each result, one per line.
package main

import (
	"flag"
	"fmt"
	"os"

	sd "github.com/revk/stringdecimal"
	"github.com/revk/stringdecimal/eval"
)

// multiFlag collects repeated occurrences of a flag into an ordered
// list, as in -pass=a -pass=b.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }
func (m *multiFlag) Set(val string) error {
	*m = append(*m, val)
	return nil
}

var (
	places  = flag.Int("p", 0, "number of fractional places for the default format")
	format  = flag.String("f", "", "output format: - = + * > e / (blank uses the default)")
	round   = flag.String("r", "", "rounding mode: T U F C R B (blank uses the default)")
	noComma = flag.Bool("no-comma", false, "disable thousands-grouping recognition and output")
	noFrac  = flag.Bool("no-frac", false, "disable Unicode vulgar-fraction suffixes")
	noSI    = flag.Bool("no-si", false, "disable SI magnitude suffixes")
	noIEEE  = flag.Bool("no-ieee", false, "disable binary (IEC) magnitude suffixes")
	comma   = flag.Bool("comma", false, "force thousands-grouping recognition and output on")
	commaCh = flag.String("comma-char", "", "thousands separator character (default ,)")
	pointCh = flag.String("point-char", "", "decimal point character (default .)")
	maxLen  = flag.Int("max", 0, "abort parsing a number of more than this many digits")

	passExpect multiFlag
	failExpect multiFlag
)

func init() {
	flag.Var(&passExpect, "pass", "expected output for the expression at the same position; counted as a mismatch if different")
	flag.Var(&failExpect, "fail", "expected failure output for the expression at the same position; counted as a mismatch if different")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: stringdecimal [options] EXPRESSION...\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func buildConfig() *sd.Config {
	cfg := &sd.Config{
		Places:    *places,
		MaxLength: *maxLen,
		NoFrac:    *noFrac,
		NoSI:      *noSI,
		NoIEEE:    *noIEEE,
	}
	if *noComma {
		cfg.NoComma = true
	}
	if *comma {
		cfg.NoComma = false
	}
	if *format != "" {
		cfg.Format = sd.Format(firstRune(*format))
	}
	if *round != "" {
		cfg.Round = sd.RoundMode(firstRune(*round))
	}
	if *commaCh != "" {
		cfg.CommaChar = firstRune(*commaCh)
	}
	if *pointCh != "" {
		cfg.PointChar = firstRune(*pointCh)
	}
	return cfg
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := buildConfig()
	mismatches := 0

	for i, expr := range flag.Args() {
		out := eval.EvalString(expr, cfg)
		fmt.Println(out)

		switch {
		case i < len(passExpect):
			if out != passExpect[i] {
				mismatches++
			}
		case i < len(failExpect):
			if out != failExpect[i] {
				mismatches++
			}
		}
	}

	os.Exit(mismatches)
}
