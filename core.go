package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/memcalc/internal/flushio"
	"github.com/jcorbin/memcalc/internal/lineinput"
	"github.com/jcorbin/memcalc/internal/logio"
)

// Recorder receives every successfully evaluated expression line.
type Recorder interface {
	Add(line string, result float64) (uint64, error)
}

// Calculator drives a Session from a line input, writing results to an
// output stream and reporting errors through errorf.
type Calculator struct {
	Session

	in      lineinput.Input
	out     flushio.WriteFlusher
	errorf  func(mess string, args ...interface{})
	prompt  string
	history Recorder

	// Failed counts lines that reported an error.
	Failed int
}

// Close closes any remaining inputs.
func (calc *Calculator) Close() error {
	return calc.in.Close()
}

func (calc *Calculator) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := calc.readLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if line == "" {
			calc.logf("empty line @%v", calc.in.Last)
			break
		}

		if err := calc.handle(line); err != nil {
			return err
		}
	}

	if calc.logfn != nil {
		lw := &logio.Writer{Logf: calc.logfn}
		sessionDumper{&calc.Session, lw}.dump()
		lw.Close()
	}

	if _, err := io.WriteString(calc.out, "session terminated\n"); err != nil {
		return err
	}
	return calc.out.Flush()
}

// readLine writes any prompt, and flushes all output, before reading.
func (calc *Calculator) readLine() (string, error) {
	if calc.prompt != "" {
		if _, err := io.WriteString(calc.out, calc.prompt); err != nil {
			return "", err
		}
	}
	if err := calc.out.Flush(); err != nil {
		return "", err
	}
	return calc.in.ReadLine()
}

// handle processes one line; only output failures are returned, line errors
// are reported and counted.
func (calc *Calculator) handle(line string) error {
	res, err := calc.Line(line)
	if err != nil {
		calc.Failed++
		calc.reportf("%v: %v", calc.in.Last, err)
		return nil
	}

	if _, err := fmt.Fprintf(calc.out, " => %v\n", res.Value); err != nil {
		return err
	}

	if calc.history != nil && !res.IsCommand() {
		seq, err := calc.history.Add(line, res.Value)
		if err != nil {
			calc.reportf("%v: unable to record history: %v", calc.in.Last, err)
		} else {
			calc.logf("history #%v", seq)
		}
	}
	return nil
}

func (calc *Calculator) reportf(mess string, args ...interface{}) {
	if calc.errorf != nil {
		calc.errorf(mess, args...)
	}
}
