// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argparse - Small, strict command line argument parser.

It parses one flat argument vector into options, positional arguments and
the arguments left after `--`, and gives typed access to the results.

# Usage

	p, err := argparse.New(
		argparse.Opt("verbose", "Print more"),
		argparse.Opt("output", "Output file", argparse.ExpectValue()),
		argparse.Opt("count", "Number of runs", argparse.ExpectValue(), argparse.Short('n')),
	)
	if err != nil {
		// Invalid definitions, for example two options with the same short alias.
	}

	err = p.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n%s", err, p.Help())
		os.Exit(1)
	}

	verbose := p.Option("verbose").Bool()
	output := argparse.AsOr(p.Option("output"), "out.txt")
	count, err := argparse.As[uint8](p.Option("count"))
	first, err := p.Arg(0).Raw()

# Token grammar

	--            start of the remaining arguments, nothing after it is parsed
	--name        long option
	--name=value  long option with an attached value
	--name value  long option that expects a value, the value can't start with -
	-x            short option, a value is always the next token
	-             positional argument
	anything else positional argument

Short options are never grouped: `-abc` is an error.
An option given more than once keeps the last value.

# Errors

Errors are meant to be matched with errors.Is.
ErrorConfiguration is returned by New.
Every Parse error matches ErrorParsing as well as one of
ErrorUnrecognizedOption, ErrorMissingOptionValue or ErrorUnexpectedOptionValue.
Typed access returns ErrorMissingRequiredValue, ErrorInvalidNumericValue or
ErrorNumericOverflow.

Enable debug logging by setting: `argparse.Logger.SetOutput(os.Stderr)`.
*/
package argparse
