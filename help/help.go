// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Renders option definitions for humans.
package help

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/DavidGamba/go-argparse/internal/option"
	"github.com/DavidGamba/go-argparse/text"
)

// Padding - indentation used inside sections.
var Padding = 4

// Color - Set to false to never colour output.
// Colour is also disabled when fatih/color detects a non terminal output or NO_COLOR.
var Color = true

var (
	optionColor = color.New(color.Bold)
	headerColor = color.New(color.FgGreen, color.Bold)
)

func paint(c *color.Color, s string) string {
	if !Color {
		return s
	}
	return c.Sprint(s)
}

// Options - One line per option in registration order:
//
//	-v, --verbose        - Print more
//	-o, --output=<value> - Output file
//
// The long form column is padded to the longest entry.
func Options(options []*option.Option) string {
	width := 0
	for _, opt := range options {
		if l := utf8.RuneCountInString(longForm(opt)); l > width {
			width = l
		}
	}
	var b strings.Builder
	for _, opt := range options {
		long := longForm(opt)
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(long))
		b.WriteString(paint(optionColor, fmt.Sprintf("-%c, --%s", opt.Short, long)))
		fmt.Fprintf(&b, "%s - %s\n", pad, opt.Description)
	}
	return b.String()
}

// longForm - name or name=<arg> without the leading dashes.
func longForm(opt *option.Option) string {
	return strings.TrimPrefix(opt.HelpSynopsis, "--")
}

// Synopsis - Usage line wrapped at 80 columns:
//
//	SYNOPSIS:
//	    prog [-v|--verbose] [-o|--output <value>] [--] [<args>]
func Synopsis(scriptName string, options []*option.Option) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	line := scriptName
	var out string
	entries := []string{}
	for _, opt := range options {
		syn := fmt.Sprintf("[-%c|--%s", opt.Short, opt.Name)
		if opt.ExpectsValue {
			syn += fmt.Sprintf(" <%s>", opt.HelpArgName)
		}
		entries = append(entries, syn+"]")
	}
	entries = append(entries, "[--] [<args>]")
	for _, syn := range entries {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(syn) > 80 {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", utf8.RuneCountInString(scriptName)), syn)
		} else {
			line += " " + syn
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", paint(headerColor, text.HelpSynopsisHeader), out)
}

// OptionList - Options under a header, indented by Padding.
func OptionList(options []*option.Option) string {
	if len(options) == 0 {
		return ""
	}
	indent := strings.Repeat(" ", Padding)
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", paint(headerColor, text.HelpOptionsHeader))
	for _, line := range strings.SplitAfter(Options(options), "\n") {
		if line == "" {
			continue
		}
		b.WriteString(indent + line)
	}
	return b.String()
}
