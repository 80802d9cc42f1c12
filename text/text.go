// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorDuplicateShortOption - Two definitions share a short alias.
var ErrorDuplicateShortOption = "found short option duplicates for -%c (--%s and --%s)"

// ErrorDuplicateOption - Two definitions share a full name.
var ErrorDuplicateOption = "option '--%s' is defined more than once"

// ErrorEmptyOptionName - A definition without a full name.
var ErrorEmptyOptionName = "option name can't be empty"

// ErrorInvalidOptionName - A full name that could never be matched in long form.
var ErrorInvalidOptionName = "option name '%s' can't start with '-' or contain '='"

// ErrorUnrecognizedOption - Long form used on the command line is not registered.
var ErrorUnrecognizedOption = "unrecognized option '--%s'"

// ErrorUnrecognizedShortOption - Short form used on the command line is not registered.
var ErrorUnrecognizedShortOption = "unrecognized option '-%c'"

// ErrorUnrecognizedToken - Single dash token that is neither a short option nor a lone dash.
var ErrorUnrecognizedToken = "unrecognized option '%s'"

// ErrorMissingOptionValue - Long option expects a value and none was given.
var ErrorMissingOptionValue = "expected value for option '--%s'"

// ErrorMissingShortOptionValue - Short option expects a value and none was given.
var ErrorMissingShortOptionValue = "expected value for option '-%c'"

// ErrorUnexpectedOptionValue - Flag called with an attached value.
var ErrorUnexpectedOptionValue = "option '--%s' does not take a value"

// ErrorMissingRequiredOption - Typed access to an option that was not called.
var ErrorMissingRequiredOption = "missing required option --%s"

// ErrorMissingRequiredArgument - Typed access to a position past the end of the arguments.
var ErrorMissingRequiredArgument = "missing required argument at position %d"

// ErrorInvalidNumericValue - Value is not a base-10 integer.
var ErrorInvalidNumericValue = "%s is not a valid numeric value"

// ErrorNumericOverflow - Value is an integer that doesn't fit the requested type.
var ErrorNumericOverflow = "%s is out of range for %s"

// HelpDefaultArgName - Placeholder used in help for option values.
var HelpDefaultArgName = "value"

// HelpSynopsisHeader - Header of the synopsis section.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - Header of the option list section.
var HelpOptionsHeader = "OPTIONS"
