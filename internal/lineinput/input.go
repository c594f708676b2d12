// Package lineinput reads lines sequentially from a queue of named input
// streams, tracking where each line came from for user feedback.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Streams are closed, if they implement io.Closer, once
// exhausted.
type Input struct {
	Queue []io.Reader

	// Last is the location of the most recently read line.
	Last Location

	cur  io.Reader
	br   *bufio.Reader
	name string
	line int
}

// ReadLine returns the next line without its line terminator. A final line
// that lacks a terminator is still returned; io.EOF is only returned once
// every queued stream is exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}

		s, err := in.br.ReadString('\n')
		if err == io.EOF && s == "" {
			in.closeCur()
			continue
		}
		if err != nil && err != io.EOF {
			return "", err
		}

		in.line++
		in.Last = Location{in.name, in.line}
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
		return s, nil
	}
}

// Close closes any remaining streams, including those still queued.
func (in *Input) Close() (err error) {
	in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.name = nameOf(r)
	in.line = 0
	return true
}

func (in *Input) closeCur() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

// Named wraps r so that its lines are located under name.
// The returned reader does not expose any Close method of r.
func Named(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
