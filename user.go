// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

// Parse - Call the parse method when done describing.
// It expects the full argument vector, os.Args, the first element is stored
// as the executable path and is not classified.
//
// Every call replaces the results of the previous one.
// On error the results are left empty.
func (p *ArgParser) Parse(args []string, fns ...ParseFn) error {
	cfg := newParseConfig(fns...)

	p.parsed = map[string]string{}
	p.arguments = []string{}
	p.remaining = []string{}
	p.executablePath = ""

	if len(args) == 0 {
		return nil
	}
	p.executablePath = args[0]
	Logger.Printf("executable: %s, args: %v, remaining mode: %t\n", args[0], args[1:], cfg.acceptRemaining)

	result, err := parseCLIArgs(p.options, args[1:], cfg)
	if err != nil {
		Logger.Printf("parse error: %s\n", err)
		return err
	}
	p.parsed = result.options
	p.arguments = result.arguments
	p.remaining = result.remaining
	return nil
}

// ExecutablePath - Returns the first element given to the last Parse call.
func (p *ArgParser) ExecutablePath() string {
	return p.executablePath
}

// ArgumentCount - Number of positional arguments.
func (p *ArgParser) ArgumentCount() int {
	return len(p.arguments)
}

// OptionCount - Number of distinct options passed on the command line.
func (p *ArgParser) OptionCount() int {
	return len(p.parsed)
}

// Args - Returns a copy of the positional arguments in the order they were given.
func (p *ArgParser) Args() []string {
	return append([]string{}, p.arguments...)
}

// Remaining - Returns a copy of the arguments given after `--`.
func (p *ArgParser) Remaining() []string {
	return append([]string{}, p.remaining...)
}

// Called - Indicates if the option was passed on the command line, by its long or short form.
func (p *ArgParser) Called(name string) bool {
	_, ok := p.parsed[name]
	return ok
}

// Option - Returns a handle to the value of the named option.
// The lookup is deferred until the handle is read.
func (p *ArgParser) Option(name string) Value {
	return Value{parser: p, name: name}
}

// Arg - Returns a handle to the positional argument at index, starting at 0.
// The lookup is deferred until the handle is read.
func (p *ArgParser) Arg(index int) Value {
	return Value{parser: p, index: index, positional: true}
}
