// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argparse

import (
	"errors"
)

// ErrorConfiguration - Indicates an invalid set of option definitions.
var ErrorConfiguration = errors.New("")

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Parse matches it.
var ErrorParsing = errors.New("")

// ErrorUnrecognizedOption - The cli args reference an option that isn't defined.
var ErrorUnrecognizedOption = errors.New("")

// ErrorMissingOptionValue - An option that expects a value didn't get one.
var ErrorMissingOptionValue = errors.New("")

// ErrorUnexpectedOptionValue - An option that doesn't expect a value was given one with `=`.
var ErrorUnexpectedOptionValue = errors.New("")

// ErrorMissingRequiredValue - A value was requested for an option or argument that is not present.
var ErrorMissingRequiredValue = errors.New("")

// ErrorInvalidNumericValue - The value can't be converted to the requested integer type.
var ErrorInvalidNumericValue = errors.New("")

// ErrorNumericOverflow - The value is an integer but doesn't fit in the requested integer type.
var ErrorNumericOverflow = errors.New("")
