package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/memcalc/internal/flushio"
	"github.com/jcorbin/memcalc/internal/lineinput"
)

type CalcOption interface{ apply(calc *Calculator) }

// CalcOptions combines any number of options into one; nil options are
// ignored.
func CalcOptions(opts ...CalcOption) CalcOption { return calcOptions(opts) }

type calcOptions []CalcOption

func (opts calcOptions) apply(calc *Calculator) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(calc)
		}
	}
}

var defaultOptions = CalcOptions(
	withOutput(ioutil.Discard),
)

type withLogfn func(mess string, args ...interface{})
type withErrorfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(calc *Calculator)   { calc.logfn = logfn }
func (errfn withErrorfn) apply(calc *Calculator) { calc.errorf = errfn }

type inputOption []io.Reader
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type promptOption string
type historyOption struct{ Recorder }

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (rs inputOption) apply(calc *Calculator) {
	calc.in.Close()
	calc.in = lineinput.Input{Queue: append([]io.Reader(nil), rs...)}
}

func (o outputOption) apply(calc *Calculator) {
	if calc.out != nil {
		calc.out.Flush()
	}
	calc.out = flushio.New(o.Writer)
}

func (o teeOption) apply(calc *Calculator) {
	calc.out = flushio.Tee(calc.out, flushio.New(o.Writer))
}

func (p promptOption) apply(calc *Calculator)  { calc.prompt = string(p) }
func (h historyOption) apply(calc *Calculator) { calc.history = h.Recorder }
