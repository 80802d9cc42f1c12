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
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-argparse/text"
)

// Value - Handle to an option value or a positional argument.
//
// It holds a reference to its ArgParser and reads the parse results every
// time it is used, so it always reflects the last Parse call.
// Values are cheap to copy. The zero Value never exists.
type Value struct {
	parser     *ArgParser
	name       string
	index      int
	positional bool
}

// Scalar - Types a Value can be rendered as.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Exists - For options, indicates if the option was called.
// For arguments, indicates if the index is within the positional arguments.
func (v Value) Exists() bool {
	if v.parser == nil {
		return false
	}
	if v.positional {
		return v.index >= 0 && v.index < len(v.parser.arguments)
	}
	_, ok := v.parser.parsed[v.name]
	return ok
}

// Raw - Returns the stored string.
// Flags that were called return an empty string.
func (v Value) Raw() (string, error) {
	if !v.Exists() {
		if v.positional {
			return "", fmt.Errorf("%w"+text.ErrorMissingRequiredArgument, ErrorMissingRequiredValue, v.index+1)
		}
		return "", fmt.Errorf("%w"+text.ErrorMissingRequiredOption, ErrorMissingRequiredValue, v.name)
	}
	if v.positional {
		return v.parser.arguments[v.index], nil
	}
	return v.parser.parsed[v.name], nil
}

// Or - Stored string or def when it doesn't exist.
func (v Value) Or(def string) string {
	return AsOr(v, def)
}

// Int - Same as Raw but converts the value to an int.
func (v Value) Int() (int, error) {
	return As[int](v)
}

// Bool - Presence is truth, the stored value is not inspected.
func (v Value) Bool() bool {
	return v.Exists()
}

// Equal - Indicates if the value exists and matches s.
func (v Value) Equal(s string) bool {
	raw, err := v.Raw()
	return err == nil && raw == s
}

// String - Stored string or an empty string when it doesn't exist.
func (v Value) String() string {
	raw, _ := v.Raw()
	return raw
}

// As - Renders the value as T.
//
//   - string kinds return the stored string.
//   - integer kinds parse the stored string in base 10 for the exact size and
//     signedness of T. Non numeric strings return ErrorInvalidNumericValue,
//     numbers that don't fit return ErrorNumericOverflow.
//   - bool kinds return Exists and never fail.
//
// Missing values return ErrorMissingRequiredValue for string and integer kinds.
func As[T Scalar](v Value) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() == reflect.Bool {
		rv.SetBool(v.Exists())
		return out, nil
	}

	raw, err := v.Raw()
	if err != nil {
		return out, err
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return out, numericError(raw, rv.Type(), err)
		}
		rv.SetInt(i)
	default: // Unsigned kinds
		// ParseUint doesn't take a sign, accept `+` the same way ParseInt does.
		u, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, rv.Type().Bits())
		if err != nil {
			return out, numericError(raw, rv.Type(), err)
		}
		rv.SetUint(u)
	}
	return out, nil
}

// AsOr - Renders the value as T or returns def.
// It never fails: def is returned when the value doesn't exist or can't be converted.
func AsOr[T Scalar](v Value, def T) T {
	if !v.Exists() {
		return def
	}
	out, err := As[T](v)
	if err != nil {
		Logger.Printf("using default for %s: %s\n", v.label(), err)
		return def
	}
	return out
}

func numericError(raw string, t reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w"+text.ErrorNumericOverflow, ErrorNumericOverflow, raw, t)
	}
	return fmt.Errorf("%w"+text.ErrorInvalidNumericValue, ErrorInvalidNumericValue, raw)
}

func (v Value) label() string {
	if v.positional {
		return fmt.Sprintf("argument %d", v.index+1)
	}
	return "--" + v.name
}
