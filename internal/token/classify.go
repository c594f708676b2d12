package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const memPrefix = "mem"

// Names is a read-only set of known memory slot names.
type Names interface {
	Has(name string) bool
}

// NoNames is an empty Names set.
var NoNames Names = noNames{}

type noNames struct{}

func (noNames) Has(string) bool { return false }

// ErrUnrecognized is matched by every UnrecognizedError.
var ErrUnrecognized = errors.New("unrecognized token")

// UnrecognizedError indicates that a word matched no classification rule.
type UnrecognizedError struct {
	Word string
}

func (err *UnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized token %q", err.Word)
}

// Is allows errors.Is(err, ErrUnrecognized).
func (err *UnrecognizedError) Is(target error) bool { return target == ErrUnrecognized }

// Classify turns a single word into a token. Rules are tried in order, the
// first match wins:
//   1. a decimal literal strconv.ParseFloat accepts is a Number; hex floats
//      and digit separators are not numbers
//   2. mem<name>+ and mem<name>- are memory commands, name may be empty
//   3. a currently known slot name is a MemoryRef
//   4. + - * / ( ) are operators
// Anything else is an *UnrecognizedError.
func Classify(word string, known Names) (Token, error) {
	if value, ok := parseNumber(word); ok {
		return Num(value), nil
	}

	if len(word) > len(memPrefix) && strings.HasPrefix(word, memPrefix) {
		name := word[len(memPrefix) : len(word)-1]
		switch word[len(word)-1] {
		case '+':
			return Inc(name), nil
		case '-':
			return Dec(name), nil
		}
	}

	if known != nil && known.Has(word) {
		return Ref(word), nil
	}

	if kind, ok := operators[word]; ok {
		return Op(kind), nil
	}

	return Token{}, &UnrecognizedError{word}
}

func parseNumber(word string) (float64, bool) {
	if strings.ContainsAny(word, "xX_") {
		return 0, false
	}
	value, err := strconv.ParseFloat(word, 64)
	if err == nil {
		return value, true
	}
	// out of range literals still carry a value: ±Inf on overflow, 0 on underflow
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return value, true
	}
	return 0, false
}

// Tokenize splits line on whitespace and classifies every word.
// The first classification failure is returned, annotated with the word's
// position in the line.
func Tokenize(line string, known Names) ([]Token, error) {
	words := strings.Fields(line)
	toks := make([]Token, 0, len(words))
	for i, word := range words {
		tok, err := Classify(word, known)
		if err != nil {
			return nil, fmt.Errorf("word #%d: %w", i+1, err)
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
