// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"strings"
	"unicode/utf8"
)

type tokenType int

const (
	tokenText       tokenType = iota // Regular cli argument, including the lone dash
	tokenTerminator                  // --
	tokenLong                        // --name or --name=value
	tokenShort                       // -x
	tokenGrouped                     // -abc, grouping is not supported
)

func (t tokenType) String() string {
	switch t {
	case tokenTerminator:
		return "terminator"
	case tokenLong:
		return "long"
	case tokenShort:
		return "short"
	case tokenGrouped:
		return "grouped"
	default:
		return "text"
	}
}

type optionPair struct {
	Type   tokenType
	Option string // Name without leading dashes
	Short  rune   // Alias for tokenShort
	Arg    string // Attached value for tokenLong
	HasArg bool   // Indicates if Arg came from `=`, it can be empty
}

/*
isOption - Classify a single cli token.

Long options are split on the first `=`, anything after it is the attached
argument even if empty or if it contains more `=` characters.
Short options are a single dash followed by exactly one character, they never
carry an attached argument.
A lone dash is regular text.

Option parsing termination (--) is identified but acting on it is the caller's
responsibility.
*/
func isOption(s string) optionPair {
	switch {
	case s == "--":
		return optionPair{Type: tokenTerminator, Option: "--"}
	case strings.HasPrefix(s, "--"):
		name, arg, found := strings.Cut(s[2:], "=")
		return optionPair{Type: tokenLong, Option: name, Arg: arg, HasArg: found}
	case s == "-" || !strings.HasPrefix(s, "-"):
		return optionPair{Type: tokenText, Option: s}
	}
	r, size := utf8.DecodeRuneInString(s[1:])
	if size == len(s)-1 {
		return optionPair{Type: tokenShort, Option: s[1:], Short: r}
	}
	return optionPair{Type: tokenGrouped, Option: s}
}

// isValue - Tokens starting with a dash are never consumed as option values.
func isValue(s string) bool {
	return !strings.HasPrefix(s, "-")
}
