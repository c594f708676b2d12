// Package panicerr turns a panic raised by a synchronous call into an error
// returned to its caller.
package panicerr

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Recover calls f on the current goroutine, returning any panic it raises as
// a non-nil error instead. The returned error wraps the panic value when that
// value is itself an error.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if val := recover(); val != nil {
			err = &recovered{name: name, val: val, stack: debug.Stack()}
		}
	}()
	return f()
}

// recovered is the error Recover returns after f panics; stack is captured
// inside the deferred recover, so it still shows the panicking frames.
type recovered struct {
	name  string
	val   interface{}
	stack []byte
}

func (rec *recovered) Error() string {
	if rec.name == "" {
		return fmt.Sprintf("paniced: %v", rec.val)
	}
	return fmt.Sprintf("%v paniced: %v", rec.name, rec.val)
}

// Format appends the captured stack under %+v.
func (rec *recovered) Format(f fmt.State, c rune) {
	io.WriteString(f, rec.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", rec.stack)
	}
}

func (rec *recovered) Unwrap() error {
	err, _ := rec.val.(error)
	return err
}

// IsPanic reports whether err, or any error it wraps, came from a panic
// caught by Recover.
func IsPanic(err error) bool {
	var rec *recovered
	return errors.As(err, &rec)
}

// PanicStack returns the stack captured by Recover when err came from a
// caught panic, or "" otherwise.
func PanicStack(err error) string {
	var rec *recovered
	if errors.As(err, &rec) {
		return string(rec.stack)
	}
	return ""
}
