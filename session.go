package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/memcalc/internal/expr"
	"github.com/jcorbin/memcalc/internal/memory"
	"github.com/jcorbin/memcalc/internal/token"
)

// ErrMalformedCommand is matched by every MalformedCommandError.
var ErrMalformedCommand = errors.New("malformed memory command")

// MalformedCommandError indicates a memory command that did not stand alone
// on its line.
type MalformedCommandError struct {
	Token token.Token
	Index int
}

func (err *MalformedCommandError) Error() string {
	return fmt.Sprintf("malformed memory command %q at #%d: must be alone on its line", err.Token, err.Index+1)
}

// Is allows errors.Is(err, ErrMalformedCommand).
func (err *MalformedCommandError) Is(target error) bool { return target == ErrMalformedCommand }

// Session holds the state that persists across lines: the memory store and
// the previous result.
type Session struct {
	Memory memory.Store
	Prev   float64

	logfn func(mess string, args ...interface{})
}

// Result is the outcome of a successful line.
type Result struct {
	// Value is either the expression value, or the new slot value after a
	// memory command.
	Value float64

	// Command is the memory command token, if the line was one; otherwise
	// its Kind is token.Invalid.
	Command token.Token
}

// IsCommand returns true if the line was a memory command.
func (res Result) IsCommand() bool { return res.Command.IsMemoryCommand() }

// Line handles one line of input. A line that fails leaves both Memory and
// Prev as they were.
func (sess *Session) Line(line string) (res Result, err error) {
	toks, err := token.Tokenize(line, &sess.Memory)
	if err != nil {
		return res, err
	}
	sess.logf("tokens %v", toks)

	if len(toks) == 1 && toks[0].IsMemoryCommand() {
		cmd := toks[0]
		delta := sess.Prev
		if cmd.Kind == token.MemoryDecrement {
			delta = -delta
		}
		res.Command = cmd
		res.Value = sess.Memory.Update(cmd.Name, delta)
		sess.logf("mem %q %+v => %v", cmd.Name, delta, res.Value)
		return res, nil
	}

	for i, tok := range toks {
		if tok.IsMemoryCommand() {
			return res, &MalformedCommandError{tok, i}
		}
	}

	ev := expr.Evaluator{Memory: &sess.Memory, Logf: sess.logfn}
	value, err := ev.Eval(toks)
	if err != nil {
		return res, err
	}
	sess.Prev = value
	res.Value = value
	return res, nil
}

func (sess *Session) logf(mess string, args ...interface{}) {
	if sess.logfn != nil {
		sess.logfn(mess, args...)
	}
}
