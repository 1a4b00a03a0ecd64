// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines the token kinds of the calculator input language.
package token

// Kind represents a calculator token kind.
type Kind int

const (
	NUMBER Kind = iota
	MEMORY_REF
	MEMORY_PLUS
	MEMORY_MINUS
	PLUS
	MINUS
	ASTERISK
	SLASH
	LPAREN
	RPAREN
)

// MemPrefix is the literal prefix that marks a memory token.
const MemPrefix = "mem"

// KindForSymbol returns the token kind for a fixed operator or paren symbol.
func KindForSymbol(s string) (Kind, bool) {
	switch s {
	case "+":
		return PLUS, true
	case "-":
		return MINUS, true
	case "*":
		return ASTERISK, true
	case "/":
		return SLASH, true
	case "(":
		return LPAREN, true
	case ")":
		return RPAREN, true
	}
	return NUMBER, false
}

// IsMemory returns true if the kind is one of the memory token kinds.
func (k Kind) IsMemory() bool {
	switch k {
	case MEMORY_REF, MEMORY_PLUS, MEMORY_MINUS:
		return true
	}
	return false
}

// String returns the string representation of a token kind.
func (k Kind) String() string {
	switch k {
	case NUMBER:
		return "NUMBER"
	case MEMORY_REF:
		return "MEMORY_REF"
	case MEMORY_PLUS:
		return "MEMORY_PLUS"
	case MEMORY_MINUS:
		return "MEMORY_MINUS"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	}
	return "UNKNOWN"
}
