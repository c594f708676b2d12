// Package expr evaluates calculator token sequences with a three level
// recursive-descent grammar:
//
//     additive       := multiplicative { ( "+" | "-" ) multiplicative }
//     multiplicative := primary { ( "*" | "/" ) primary }
//     primary        := Number | MemoryRef | "(" additive ")"
//
// Every level returns the value it computed along with the index of the next
// unconsumed token, so that callers know exactly how much input was used.
package expr

import (
	"github.com/jcorbin/memcalc/internal/memory"
	"github.com/jcorbin/memcalc/internal/token"
)

// Memory resolves MemoryRef tokens.
type Memory interface {
	Get(name string) (float64, error)
}

// Evaluator evaluates token sequences against a Memory, which it only reads.
type Evaluator struct {
	Memory Memory

	// Logf, if not nil, receives a trace line for every reduction.
	Logf func(mess string, args ...interface{})
}

// Eval evaluates toks against mem using a default Evaluator.
func Eval(toks []token.Token, mem Memory) (float64, error) {
	ev := Evaluator{Memory: mem}
	return ev.Eval(toks)
}

// Eval evaluates the whole of toks as one additive expression; any tokens
// left over after it are an *UnexpectedTokenError.
func (ev Evaluator) Eval(toks []token.Token) (float64, error) {
	value, next, err := ev.additive(toks, 0)
	if err != nil {
		return 0, err
	}
	if next < len(toks) {
		return 0, &UnexpectedTokenError{toks[next], next}
	}
	ev.logf("=", "%v", value)
	return value, nil
}

func (ev Evaluator) additive(toks []token.Token, i int) (float64, int, error) {
	value, i, err := ev.multiplicative(toks, i)
	for err == nil && i < len(toks) {
		op := toks[i].Kind
		if op != token.Plus && op != token.Minus {
			break
		}
		var rhs float64
		if rhs, i, err = ev.multiplicative(toks, i+1); err != nil {
			break
		}
		if op == token.Plus {
			ev.logf("+", "%v + %v", value, rhs)
			value += rhs
		} else {
			ev.logf("-", "%v - %v", value, rhs)
			value -= rhs
		}
	}
	return value, i, err
}

func (ev Evaluator) multiplicative(toks []token.Token, i int) (float64, int, error) {
	value, i, err := ev.primary(toks, i)
	for err == nil && i < len(toks) {
		op := toks[i].Kind
		if op != token.Asterisk && op != token.Slash {
			break
		}
		var rhs float64
		if rhs, i, err = ev.primary(toks, i+1); err != nil {
			break
		}
		if op == token.Asterisk {
			ev.logf("*", "%v * %v", value, rhs)
			value *= rhs
		} else if rhs == 0 {
			err = ErrDivisionByZero
		} else {
			ev.logf("/", "%v / %v", value, rhs)
			value /= rhs
		}
	}
	return value, i, err
}

func (ev Evaluator) primary(toks []token.Token, i int) (float64, int, error) {
	if i >= len(toks) {
		return 0, i, ErrUnexpectedEnd
	}
	switch tok := toks[i]; tok.Kind {
	case token.LParen:
		value, next, err := ev.additive(toks, i+1)
		if err != nil {
			return 0, next, err
		}
		if next >= len(toks) || toks[next].Kind != token.RParen {
			return 0, next, ErrMissingParen
		}
		return value, next + 1, nil

	case token.Number:
		return tok.Value, i + 1, nil

	case token.MemoryRef:
		if ev.Memory == nil {
			return 0, i, &memory.NotFoundError{Name: tok.Name}
		}
		value, err := ev.Memory.Get(tok.Name)
		if err == nil {
			ev.logf("@", "%v = %v", tok.Name, value)
		}
		return value, i + 1, err

	default:
		return 0, i, &UnexpectedTokenError{tok, i}
	}
}

func (ev Evaluator) logf(mark, mess string, args ...interface{}) {
	if ev.Logf != nil {
		ev.Logf(mark+" "+mess, args...)
	}
}
