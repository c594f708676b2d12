package expr

import (
	"errors"
	"fmt"

	"github.com/jcorbin/memcalc/internal/token"
)

// Evaluation errors.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrMissingParen    = errors.New("missing closing parenthesis")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of expression")
)

// UnexpectedTokenError indicates a token that the grammar does not allow at
// its position.
type UnexpectedTokenError struct {
	Token token.Token
	Index int
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at #%d", err.Token, err.Index+1)
}

// Is allows errors.Is(err, ErrUnexpectedToken).
func (err *UnexpectedTokenError) Is(target error) bool { return target == ErrUnexpectedToken }
