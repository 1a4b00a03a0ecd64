// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner splits calculator input lines into classified tokens.
package scanner

import (
	"strconv"
	"strings"
	"unicode"

	"nickandperla.net/memcalc/internal/token"
)

// Item is one scanned token with its source text and position.
type Item struct {
	Kind  token.Kind
	Name  string  // slot name for memory tokens (may be empty)
	Value float64 // numeric value for NUMBER tokens
	Text  string  // the original whitespace-delimited field
	Col   int     // rune column of the field in the line (1-based)
}

// Scan splits a line on runs of whitespace and classifies each field.
// It is a pure function of its input; an unclassifiable field yields a
// MalformedNumberError and no items.
func Scan(line string) ([]Item, error) {
	var items []Item
	var buf strings.Builder
	col, start := 0, 0

	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		item, err := classify(buf.String(), start)
		if err != nil {
			return err
		}
		items = append(items, item)
		buf.Reset()
		return nil
	}

	for _, r := range line {
		col++
		if unicode.IsSpace(r) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if buf.Len() == 0 {
			start = col
		}
		buf.WriteRune(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return items, nil
}

// classify maps one field to a token. Classification order: fixed symbols,
// then the mem prefix, then a floating-point literal.
func classify(text string, col int) (Item, error) {
	if kind, ok := token.KindForSymbol(text); ok {
		return Item{Kind: kind, Text: text, Col: col}, nil
	}
	if strings.HasPrefix(text, token.MemPrefix) {
		name := strings.TrimPrefix(text, token.MemPrefix)
		switch {
		case strings.HasSuffix(name, "+"):
			return Item{Kind: token.MEMORY_PLUS, Name: strings.TrimSuffix(name, "+"), Text: text, Col: col}, nil
		case strings.HasSuffix(name, "-"):
			return Item{Kind: token.MEMORY_MINUS, Name: strings.TrimSuffix(name, "-"), Text: text, Col: col}, nil
		default:
			// A bare "mem" names the empty slot, which is legal.
			return Item{Kind: token.MEMORY_REF, Name: name, Text: text, Col: col}, nil
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Item{}, &MalformedNumberError{Text: text, Col: col}
	}
	return Item{Kind: token.NUMBER, Value: v, Text: text, Col: col}, nil
}

// MalformedNumberError indicates a field that is neither an operator nor a
// memory token and does not parse as a floating-point literal.
type MalformedNumberError struct {
	// Text is the field that failed classification.
	Text string
	// Col is the rune column where the field starts.
	Col int
}

func (err *MalformedNumberError) Error() string {
	return strconv.Itoa(err.Col) + ": malformed number " + strconv.Quote(err.Text)
}

func (err *MalformedNumberError) Pos() int {
	return err.Col
}
