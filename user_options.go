// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"github.com/DavidGamba/go-argparse/internal/option"
)

// ModifyFn - Function signature for functions that modify an option definition.
type ModifyFn func(opt *option.Option)

// Opt - Builds an option definition.
// The short alias defaults to the first character of name, override it with Short.
func Opt(name, description string, fns ...ModifyFn) *Option {
	opt := option.New(name, description)
	for _, fn := range fns {
		fn(opt)
	}
	return opt
}

// Short - Sets the single character alias used as `-x`.
func Short(r rune) ModifyFn {
	return func(opt *option.Option) {
		opt.SetShort(r)
	}
}

// ExpectValue - The option consumes a value, either `--name=value`, `--name value` or `-x value`.
func ExpectValue() ModifyFn {
	return func(opt *option.Option) {
		opt.SetExpectValue(true)
	}
}

// ArgName - Change the value name shown in help from the default <value>.
func ArgName(name string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetHelpArgName(name)
	}
}

// ParseFn - Function signature for functions that change the behaviour of a single Parse call.
type ParseFn func(cfg *ParseConfig)

// ParseConfig - Settings of a single Parse call, only changed through ParseFn.
type ParseConfig struct {
	acceptRemaining bool
}

func newParseConfig(fns ...ParseFn) ParseConfig {
	cfg := ParseConfig{acceptRemaining: true}
	for _, fn := range fns {
		fn(&cfg)
	}
	return cfg
}

// AcceptRemaining - Controls whether a bare `--` starts the remaining arguments tail.
// Enabled by default.
// When disabled `--` is treated as a long option without a name and is rejected.
func AcceptRemaining(b bool) ParseFn {
	return func(cfg *ParseConfig) {
		cfg.acceptRemaining = b
	}
}
