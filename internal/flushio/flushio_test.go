package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/memcalc/internal/flushio"
)

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

type fileLike struct {
	buf    []byte
	writes int
}

func (fl *fileLike) Write(p []byte) (int, error) {
	fl.writes++
	fl.buf = append(fl.buf, p...)
	return len(p), nil
}

func Test_New(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.New(&buf)
	_, err := wf.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String(), "expected buffer writes to be immediate")
	assert.NoError(t, wf.Flush())

	var sb strings.Builder
	wf = flushio.New(&sb)
	wf.Write([]byte("x"))
	assert.Equal(t, "x", sb.String())

	bw := bufio.NewWriter(&buf)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.New(bw), "expected existing WriteFlusher to pass through")

	assert.NoError(t, flushio.New(ioutil.Discard).Flush())
}

func Test_New_buffered(t *testing.T) {
	var fl fileLike
	wf := flushio.New(&fl)
	wf.Write([]byte(" => 1\n"))
	wf.Write([]byte(" => 2\n"))
	assert.Equal(t, 0, fl.writes, "expected writes to be buffered")
	require.NoError(t, wf.Flush())
	assert.Equal(t, " => 1\n => 2\n", string(fl.buf))
	assert.Equal(t, 1, fl.writes)
}

func Test_Tee(t *testing.T) {
	var a, b bytes.Buffer
	var fl fileLike
	wf := flushio.Tee(flushio.New(&a), nil, flushio.Tee(flushio.New(&b), flushio.New(&fl)))
	_, err := wf.Write([]byte("42\n"))
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "42\n", a.String())
	assert.Equal(t, "42\n", b.String())
	assert.Equal(t, "42\n", string(fl.buf))

	one := flushio.New(&a)
	assert.Equal(t, one, flushio.Tee(nil, one), "expected a single writer to be returned as is")

	none := flushio.Tee()
	n, err := none.Write([]byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func Test_Tee_writeError(t *testing.T) {
	boom := errors.New("boom")
	var a bytes.Buffer
	wf := flushio.Tee(flushio.New(&a), flushio.New(failWriter{boom}))
	_, err := wf.Write([]byte("x"))
	require.NoError(t, err, "expected the failing writer to be buffered")
	assert.Equal(t, boom, wf.Flush())
}
