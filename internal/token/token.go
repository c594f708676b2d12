// Package token defines the lexical vocabulary of calculator input lines, and
// the rules for classifying whitespace delimited words into tokens.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Token is.
type Kind int

// Token kinds; Invalid is the zero Kind so that an unset Token is never
// mistaken for a number.
const (
	Invalid Kind = iota
	Number
	MemoryRef
	MemoryIncrement
	MemoryDecrement
	Plus
	Minus
	Asterisk
	Slash
	LParen
	RParen
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	Number:          "Number",
	MemoryRef:       "MemoryRef",
	MemoryIncrement: "MemoryIncrement",
	MemoryDecrement: "MemoryDecrement",
	Plus:            "Plus",
	Minus:           "Minus",
	Asterisk:        "Asterisk",
	Slash:           "Slash",
	LParen:          "LParen",
	RParen:          "RParen",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// operators maps the surface form of each operator to its kind.
var operators = map[string]Kind{
	"+": Plus,
	"-": Minus,
	"*": Asterisk,
	"/": Slash,
	"(": LParen,
	")": RParen,
}

// Token is one classified word of an input line.
// Value is only meaningful for Number tokens; Name only for the three memory
// kinds.
type Token struct {
	Kind  Kind
	Value float64
	Name  string
}

// Num returns a Number token.
func Num(value float64) Token { return Token{Kind: Number, Value: value} }

// Ref returns a MemoryRef token.
func Ref(name string) Token { return Token{Kind: MemoryRef, Name: name} }

// Inc returns a MemoryIncrement token.
func Inc(name string) Token { return Token{Kind: MemoryIncrement, Name: name} }

// Dec returns a MemoryDecrement token.
func Dec(name string) Token { return Token{Kind: MemoryDecrement, Name: name} }

// Op returns the operator token of the given kind.
func Op(kind Kind) Token { return Token{Kind: kind} }

// IsMemoryCommand returns true for MemoryIncrement and MemoryDecrement tokens.
func (tok Token) IsMemoryCommand() bool {
	return tok.Kind == MemoryIncrement || tok.Kind == MemoryDecrement
}

// String returns the surface form of the token; re-classifying it yields an
// equal token (given the same known slot names for MemoryRef).
func (tok Token) String() string {
	switch tok.Kind {
	case Number:
		return strconv.FormatFloat(tok.Value, 'g', -1, 64)
	case MemoryRef:
		return tok.Name
	case MemoryIncrement:
		return memPrefix + tok.Name + "+"
	case MemoryDecrement:
		return memPrefix + tok.Name + "-"
	}
	for s, kind := range operators {
		if kind == tok.Kind {
			return s
		}
	}
	return tok.Kind.String()
}
