// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-argparse/internal/option"
	"github.com/DavidGamba/go-argparse/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Option - Definition of a recognized option. Build them with Opt.
type Option = option.Option

// ArgParser - main object.
//
// An ArgParser is not safe for concurrent use while Parse runs.
// Once Parse returns, the results are read only and can be shared.
type ArgParser struct {
	options []*option.Option

	executablePath string
	parsed         map[string]string // full option name => value, "" for flags
	arguments      []string
	remaining      []string
}

// New - Returns a new ArgParser for the given option definitions.
//
// Definitions built as struct literals get the same defaults as Opt, the
// short alias is the first character of the name unless set.
//
// Definitions are validated eagerly: an empty name, a name starting with `-`
// or containing `=`, a name defined twice or two definitions sharing a short
// alias return an error matching ErrorConfiguration.
func New(options ...*Option) (*ArgParser, error) {
	list := make([]*option.Option, 0, len(options))
	for _, opt := range options {
		list = append(list, opt.Copy().Normalize())
	}
	err := validate(list)
	if err != nil {
		return nil, err
	}
	return &ArgParser{
		options:   list,
		parsed:    map[string]string{},
		arguments: []string{},
		remaining: []string{},
	}, nil
}

// MustNew - Like New but panics on invalid definitions.
func MustNew(options ...*Option) *ArgParser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

func validate(list []*option.Option) error {
	for i, current := range list {
		if current.Name == "" {
			return fmt.Errorf("%w"+text.ErrorEmptyOptionName, ErrorConfiguration)
		}
		if strings.HasPrefix(current.Name, "-") || strings.Contains(current.Name, "=") {
			return fmt.Errorf("%w"+text.ErrorInvalidOptionName, ErrorConfiguration, current.Name)
		}
		for _, other := range list[i+1:] {
			if current.Name == other.Name {
				return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorConfiguration, current.Name)
			}
			if current.Short == other.Short {
				return fmt.Errorf("%w"+text.ErrorDuplicateShortOption, ErrorConfiguration, current.Short, current.Name, other.Name)
			}
		}
	}
	return nil
}

// Options - Returns a copy of the option definitions in registration order.
func (p *ArgParser) Options() []*Option {
	list := make([]*option.Option, 0, len(p.options))
	for _, opt := range p.options {
		list = append(list, opt.Copy())
	}
	return list
}
