package lineinput_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/memcalc/internal/lineinput"
)

type closeRecorder struct {
	io.Reader
	name   string
	closed bool
}

func (cr *closeRecorder) Name() string { return cr.name }
func (cr *closeRecorder) Close() error { cr.closed = true; return nil }

type failReader struct{ err error }

func (fr failReader) Read([]byte) (int, error) { return 0, fr.err }

func Test_Input(t *testing.T) {
	a := &closeRecorder{Reader: strings.NewReader("1 + 2\r\nmemx+\n"), name: "a.calc"}
	b := &closeRecorder{Reader: strings.NewReader("x * 2"), name: "b.calc"}
	in := lineinput.Input{Queue: []io.Reader{
		a,
		lineinput.Named("empty", strings.NewReader("")),
		b,
	}}

	type read struct {
		line string
		loc  string
	}
	var reads []read
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		reads = append(reads, read{line, in.Last.String()})
	}

	assert.Equal(t, []read{
		{"1 + 2", "a.calc:1"},
		{"memx+", "a.calc:2"},
		{"x * 2", "b.calc:1"},
	}, reads)
	assert.True(t, a.closed, "expected first input to be closed")
	assert.True(t, b.closed, "expected last input to be closed")

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to persist")
}

func Test_Input_blankLines(t *testing.T) {
	in := lineinput.Input{Queue: []io.Reader{
		lineinput.Named("stdin", strings.NewReader("1\n\n2\n")),
	}}
	for _, want := range []string{"1", "", "2"} {
		line, err := in.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	assert.Equal(t, lineinput.Location{Name: "stdin", Line: 3}, in.Last)
}

func Test_Input_unnamed(t *testing.T) {
	in := lineinput.Input{Queue: []io.Reader{strings.NewReader("3\n")}}
	_, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "<unnamed *strings.Reader>:1", in.Last.String())
}

func Test_Input_readError(t *testing.T) {
	boom := errors.New("boom")
	in := lineinput.Input{Queue: []io.Reader{failReader{boom}}}
	_, err := in.ReadLine()
	assert.Equal(t, boom, err)
}

func Test_Input_Close(t *testing.T) {
	a := &closeRecorder{Reader: strings.NewReader("1\n2\n"), name: "a"}
	b := &closeRecorder{Reader: strings.NewReader("3\n"), name: "b"}
	in := lineinput.Input{Queue: []io.Reader{a, b}}
	_, err := in.ReadLine()
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.True(t, a.closed, "expected current input closed")
	assert.True(t, b.closed, "expected queued input closed")
	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}
