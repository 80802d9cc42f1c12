// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option definition struct and methods.
package option

import (
	"fmt"
	"unicode/utf8"

	"github.com/DavidGamba/go-argparse/text"
)

// Option - definition of a recognized command line option.
type Option struct {
	Name         string // Full name, used as --name and as the key of the parsed table
	Short        rune   // Single character alias, used as -x
	Description  string // Optional description used for help
	ExpectsValue bool   // Indicates if the option consumes a value
	HelpArgName  string // Name of the value shown in help

	HelpSynopsis string // Help synopsis, e.g. `--output=<value>`

	shortSet bool
}

// New - Returns a new option definition.
// The short alias defaults to the first character of the name.
func New(name, description string) *Option {
	opt := &Option{
		Name:        name,
		Description: description,
	}
	opt.Normalize()
	return opt
}

// Normalize - Fills in the defaults of a definition built as a struct literal:
// the short alias, the help arg name and the synopsis.
func (opt *Option) Normalize() *Option {
	if !opt.ShortSet() && opt.Short == 0 {
		if r, size := utf8.DecodeRuneInString(opt.Name); size > 0 {
			opt.Short = r
		}
	}
	if opt.HelpArgName == "" {
		opt.HelpArgName = text.HelpDefaultArgName
	}
	opt.Synopsis()
	return opt
}

// Synopsis - Updates the HelpSynopsis.
func (opt *Option) Synopsis() {
	opt.HelpSynopsis = "--" + opt.Name
	if opt.ExpectsValue {
		opt.HelpSynopsis += fmt.Sprintf("=<%s>", opt.HelpArgName)
	}
}

// SetShort - Overrides the default short alias.
func (opt *Option) SetShort(r rune) *Option {
	opt.Short = r
	opt.shortSet = true
	return opt
}

// ShortSet - Indicates if the short alias was explicitly set.
func (opt *Option) ShortSet() bool {
	return opt.shortSet
}

// SetExpectValue - Marks the option as consuming a value.
func (opt *Option) SetExpectValue(b bool) *Option {
	opt.ExpectsValue = b
	opt.Synopsis()
	return opt
}

// SetHelpArgName - Updates the HelpArgName.
func (opt *Option) SetHelpArgName(s string) *Option {
	opt.HelpArgName = s
	opt.Synopsis()
	return opt
}

// Copy - Returns a copy of the option so callers can't mutate the registry.
func (opt *Option) Copy() *Option {
	c := *opt
	return &c
}

// Find - Linear scan returning the first option with the given name.
func Find(list []*Option, name string) *Option {
	for _, opt := range list {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// FindShort - Linear scan returning the first option with the given short alias.
func FindShort(list []*Option, r rune) *Option {
	for _, opt := range list {
		if opt.Short == r {
			return opt
		}
	}
	return nil
}
