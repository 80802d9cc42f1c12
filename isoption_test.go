// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsOption(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want optionPair
	}{
		{"lone dash", "-", optionPair{Type: tokenText, Option: "-"}},
		{"double dash", "--", optionPair{Type: tokenTerminator, Option: "--"}},
		{"text", "opt", optionPair{Type: tokenText, Option: "opt"}},
		{"empty", "", optionPair{Type: tokenText, Option: ""}},
		{"text with dash inside", "a-b", optionPair{Type: tokenText, Option: "a-b"}},

		{"long option", "--opt", optionPair{Type: tokenLong, Option: "opt"}},
		{"long option with arg", "--opt=arg", optionPair{Type: tokenLong, Option: "opt", Arg: "arg", HasArg: true}},
		{"long option with empty arg", "--opt=", optionPair{Type: tokenLong, Option: "opt", Arg: "", HasArg: true}},
		{"long option split on first equal", "--opt=a=b", optionPair{Type: tokenLong, Option: "opt", Arg: "a=b", HasArg: true}},
		{"long option with dashed arg", "--opt=-5", optionPair{Type: tokenLong, Option: "opt", Arg: "-5", HasArg: true}},
		{"triple dash", "---opt", optionPair{Type: tokenLong, Option: "-opt"}},
		{"empty long name", "--=arg", optionPair{Type: tokenLong, Option: "", Arg: "arg", HasArg: true}},

		{"short option", "-o", optionPair{Type: tokenShort, Option: "o", Short: 'o'}},
		{"short digit", "-5", optionPair{Type: tokenShort, Option: "5", Short: '5'}},
		{"short unicode", "-ñ", optionPair{Type: tokenShort, Option: "ñ", Short: 'ñ'}},

		{"grouped", "-opt", optionPair{Type: tokenGrouped, Option: "-opt"}},
		{"short with arg", "-o=arg", optionPair{Type: tokenGrouped, Option: "-o=arg"}},
		{"negative number", "-42", optionPair{Type: tokenGrouped, Option: "-42"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := isOption(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("isOption(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestIsValue(t *testing.T) {
	for in, want := range map[string]bool{
		"value": true,
		"":      true,
		"a-b":   true,
		"-":     false,
		"-v":    false,
		"--":    false,
		"--opt": false,
		"-5":    false,
	} {
		if got := isValue(in); got != want {
			t.Errorf("isValue(%q) = %v, want %v", in, got, want)
		}
	}
}
