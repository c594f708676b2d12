package main

import (
	"context"
	"io"

	"github.com/jcorbin/memcalc/internal/panicerr"
)

// New creates a Calculator; its Session starts with empty memory and a zero
// previous result.
func New(opts ...CalcOption) *Calculator {
	var calc Calculator
	defaultOptions.apply(&calc)
	CalcOptions(opts...).apply(&calc)
	return &calc
}

// Run reads and handles lines until an empty line or the end of input, then
// writes a final termination message. Line errors do not stop Run; it only
// fails if ctx is done, or input or output fail.
func (calc *Calculator) Run(ctx context.Context) error {
	err := panicerr.Recover("calculator", func() error {
		return calc.run(ctx)
	})
	if calc.out != nil {
		if ferr := calc.out.Flush(); err == nil {
			err = ferr
		}
	}
	if cerr := calc.Close(); err == nil {
		err = cerr
	}
	return err
}

func WithInput(rs ...io.Reader) CalcOption { return inputOption(rs) }
func WithOutput(w io.Writer) CalcOption    { return outputOption{w} }
func WithTee(w io.Writer) CalcOption       { return teeOption{w} }
func WithPrompt(prompt string) CalcOption  { return promptOption(prompt) }
func WithHistory(rec Recorder) CalcOption  { return historyOption{rec} }

func WithLogf(logfn func(mess string, args ...interface{})) CalcOption   { return withLogfn(logfn) }
func WithErrorf(errfn func(mess string, args ...interface{})) CalcOption { return withErrorfn(errfn) }
