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

	"github.com/DavidGamba/go-argparse/internal/option"
	"github.com/DavidGamba/go-argparse/internal/sliceiterator"
	"github.com/DavidGamba/go-argparse/text"
)

type parseResult struct {
	options   map[string]string
	arguments []string
	remaining []string
}

// parseCLIArgs - Given the option definitions and the cli args (without the
// executable path) it classifies every token.
// The first error aborts the parse, no partial result is returned.
func parseCLIArgs(options []*option.Option, args []string, cfg ParseConfig) (*parseResult, error) {
	result := &parseResult{
		options:   map[string]string{},
		arguments: []string{},
		remaining: []string{},
	}

	iterator := sliceiterator.New(args)

ARGS_LOOP:
	for iterator.Next() {
		p := isOption(iterator.Value())
		Logger.Printf("token: %q, type: %s\n", iterator.Value(), p.Type)

		switch p.Type {
		case tokenTerminator:
			if cfg.acceptRemaining {
				result.remaining = iterator.Rest()
				Logger.Printf("remaining: %v\n", result.remaining)
				break ARGS_LOOP
			}
			return nil, fmt.Errorf("%w%w"+text.ErrorUnrecognizedOption, ErrorParsing, ErrorUnrecognizedOption, "")

		case tokenLong:
			opt := option.Find(options, p.Option)
			if opt == nil {
				return nil, fmt.Errorf("%w%w"+text.ErrorUnrecognizedOption, ErrorParsing, ErrorUnrecognizedOption, p.Option)
			}
			if !opt.ExpectsValue {
				if p.HasArg {
					return nil, fmt.Errorf("%w%w"+text.ErrorUnexpectedOptionValue, ErrorParsing, ErrorUnexpectedOptionValue, p.Option)
				}
				result.options[opt.Name] = ""
				continue ARGS_LOOP
			}
			if p.HasArg {
				result.options[opt.Name] = p.Arg
				continue ARGS_LOOP
			}
			value, ok := iterator.TakeNextIf(isValue)
			if !ok {
				return nil, fmt.Errorf("%w%w"+text.ErrorMissingOptionValue, ErrorParsing, ErrorMissingOptionValue, p.Option)
			}
			result.options[opt.Name] = value

		case tokenShort:
			opt := option.FindShort(options, p.Short)
			if opt == nil {
				return nil, fmt.Errorf("%w%w"+text.ErrorUnrecognizedShortOption, ErrorParsing, ErrorUnrecognizedOption, p.Short)
			}
			if !opt.ExpectsValue {
				result.options[opt.Name] = ""
				continue ARGS_LOOP
			}
			value, ok := iterator.TakeNextIf(isValue)
			if !ok {
				return nil, fmt.Errorf("%w%w"+text.ErrorMissingShortOptionValue, ErrorParsing, ErrorMissingOptionValue, p.Short)
			}
			result.options[opt.Name] = value

		case tokenGrouped:
			return nil, fmt.Errorf("%w%w"+text.ErrorUnrecognizedToken, ErrorParsing, ErrorUnrecognizedOption, p.Option)

		default:
			result.arguments = append(result.arguments, iterator.Value())
		}
	}

	return result, nil
}
