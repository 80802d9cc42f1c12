// This file is part of go-argparse.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - walks a slice of cli tokens allowing to peek at and consume the next one.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator positioned before the first token.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Next - moves the index forward and returns a bool to indicate if there is a token to read.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns the current token or an empty string once the slice is exhausted.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next token without consuming it and indicates whether it exists.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// TakeNextIf - Consumes and returns the next token when accept returns true for it.
func (a *Iterator) TakeNextIf(accept func(string) bool) (string, bool) {
	v, ok := a.PeekNextValue()
	if !ok || !accept(v) {
		return "", false
	}
	a.idx++
	return v, true
}

// Rest - Consumes and returns a copy of every token after the current one.
func (a *Iterator) Rest() []string {
	start := a.idx + 1
	if start > len(a.data) {
		start = len(a.data)
	}
	rest := make([]string, len(a.data)-start)
	copy(rest, a.data[start:])
	a.idx = len(a.data)
	return rest
}
