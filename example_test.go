// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DavidGamba/go-argparse"
)

func Example() {
	// Options definition
	p, err := argparse.New(
		argparse.Opt("verbose", "Print more"),
		argparse.Opt("output", "Output file", argparse.ExpectValue()),
		argparse.Opt("greet", "Number of times to greet", argparse.ExpectValue(), argparse.Short('n')),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	// Parse cmdline arguments, normally os.Args
	err = p.Parse(strings.Fields("prog -v -n 2 --output=out.txt World -- --raw"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n%s", err, p.Help())
		os.Exit(1)
	}

	count, err := argparse.As[int](p.Option("greet"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	name := argparse.AsOr(p.Arg(0), "nobody")
	for i := 0; i < count; i++ {
		fmt.Printf("Hello %s!\n", name)
	}
	fmt.Println("verbose:", p.Option("verbose").Bool())
	fmt.Println("output:", p.Option("output"))
	fmt.Println("remaining:", p.Remaining())

	// Output:
	// Hello World!
	// Hello World!
	// verbose: true
	// output: out.txt
	// remaining: [--raw]
}

func ExampleArgParser_Parse_errors() {
	p := argparse.MustNew(
		argparse.Opt("output", "Output file", argparse.ExpectValue()),
	)

	err := p.Parse([]string{"prog", "--output"})
	fmt.Println(err, errors.Is(err, argparse.ErrorMissingOptionValue))

	err = p.Parse([]string{"prog", "--unknown"})
	fmt.Println(err, errors.Is(err, argparse.ErrorUnrecognizedOption))

	err = p.Parse([]string{"prog", "-o", "--", "x"})
	fmt.Println(err, errors.Is(err, argparse.ErrorParsing))

	// Output:
	// expected value for option '--output' true
	// unrecognized option '--unknown' true
	// expected value for option '-o' true
}

func ExampleArgParser_String() {
	p := argparse.MustNew(
		argparse.Opt("verbose", "Print more"),
		argparse.Opt("output", "Output file", argparse.ExpectValue()),
	)
	fmt.Print(p)

	// Output:
	// -v, --verbose        - Print more
	// -o, --output=<value> - Output file
}

func ExampleAsOr() {
	p := argparse.MustNew(
		argparse.Opt("port", "Port to listen on", argparse.ExpectValue()),
	)
	_ = p.Parse([]string{"prog"})
	fmt.Println(argparse.AsOr(p.Option("port"), uint16(8080)))

	_ = p.Parse([]string{"prog", "--port", "9090"})
	fmt.Println(argparse.AsOr(p.Option("port"), uint16(8080)))

	_, err := argparse.As[uint16](p.Option("port"))
	fmt.Println(err)

	_ = p.Parse([]string{"prog", "--port=70000"})
	_, err = argparse.As[uint16](p.Option("port"))
	fmt.Println(err, errors.Is(err, argparse.ErrorNumericOverflow))

	// Output:
	// 8080
	// 9090
	// <nil>
	// 70000 is out of range for uint16 true
}
