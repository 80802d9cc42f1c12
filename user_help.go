// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"io"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-argparse/help"
)

// HelpSection - Indicates what portion of the help to return.
type HelpSection int

// Help Output Types
const (
	HelpSynopsis HelpSection = iota
	HelpOptionList
)

// Help - Default help string that is composed of all available sections.
func (p *ArgParser) Help(sections ...HelpSection) string {
	if len(sections) == 0 {
		sections = []HelpSection{HelpSynopsis, HelpOptionList}
	}
	out := ""
	for i, section := range sections {
		if i > 0 {
			out += "\n"
		}
		switch section {
		case HelpSynopsis:
			out += help.Synopsis(p.scriptName(), p.options)
		case HelpOptionList:
			out += help.OptionList(p.options)
		}
	}
	return out
}

// String - The option table, one line per option.
func (p *ArgParser) String() string {
	return help.Options(p.options)
}

// WriteHelp - Writes the option table to w.
func (p *ArgParser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, p.String())
	return err
}

func (p *ArgParser) scriptName() string {
	if p.executablePath != "" {
		return filepath.Base(p.executablePath)
	}
	return filepath.Base(os.Args[0])
}
