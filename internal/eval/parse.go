package eval

import (
	"nickandperla.net/memcalc/internal/memory"
	"nickandperla.net/memcalc/internal/scanner"
	"nickandperla.net/memcalc/internal/token"
)

// Evaluate reduces a full token sequence to a value, resolving memory
// references through mem. Tokens left over after the top-level reduction are
// a TrailingTokenError.
//
// Grammar, one function per precedence tier:
//
//	expr           := additive
//	additive       := multiplicative ( ('+'|'-') multiplicative )*
//	multiplicative := primary ( ('*'|'/') primary )*
//	primary        := NUMBER | MEMORY_REF | '(' additive ')'
//
// Each tier takes a cursor and returns the value with the next cursor, so
// callers resume scanning after the consumed sub-expression. Division follows
// IEEE754: dividing by zero yields ±Inf or NaN, never an error.
func Evaluate(items []scanner.Item, mem *memory.Store) (float64, error) {
	v, next, err := additive(items, 0, mem)
	if err != nil {
		return 0, err
	}
	if next != len(items) {
		it := items[next]
		return 0, &TrailingTokenError{Col: it.Col, Text: it.Text}
	}
	return v, nil
}

func additive(items []scanner.Item, pos int, mem *memory.Store) (float64, int, error) {
	left, pos, err := multiplicative(items, pos, mem)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(items) {
		op := items[pos]
		if op.Kind != token.PLUS && op.Kind != token.MINUS {
			break
		}
		right, next, err := multiplicative(items, pos+1, mem)
		if err != nil {
			return 0, next, err
		}
		if op.Kind == token.PLUS {
			left += right
		} else {
			left -= right
		}
		pos = next
	}
	return left, pos, nil
}

func multiplicative(items []scanner.Item, pos int, mem *memory.Store) (float64, int, error) {
	left, pos, err := primary(items, pos, mem)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(items) {
		op := items[pos]
		if op.Kind != token.ASTERISK && op.Kind != token.SLASH {
			break
		}
		right, next, err := primary(items, pos+1, mem)
		if err != nil {
			return 0, next, err
		}
		if op.Kind == token.ASTERISK {
			left *= right
		} else {
			left /= right
		}
		pos = next
	}
	return left, pos, nil
}

func primary(items []scanner.Item, pos int, mem *memory.Store) (float64, int, error) {
	if pos >= len(items) {
		return 0, pos, &UnexpectedEOFError{Col: endCol(items)}
	}
	it := items[pos]
	switch it.Kind {
	case token.NUMBER:
		return it.Value, pos + 1, nil
	case token.MEMORY_REF:
		return mem.Get(it.Name), pos + 1, nil
	case token.LPAREN:
		v, next, err := additive(items, pos+1, mem)
		if err != nil {
			return 0, next, err
		}
		if next >= len(items) || items[next].Kind != token.RPAREN {
			return 0, next, &UnbalancedParenError{Col: it.Col}
		}
		return v, next + 1, nil
	}
	return 0, pos, &UnexpectedTokenError{Col: it.Col, Text: it.Text}
}

// endCol returns the rune column just past the last token.
func endCol(items []scanner.Item) int {
	if len(items) == 0 {
		return 1
	}
	last := items[len(items)-1]
	return last.Col + len([]rune(last.Text))
}
