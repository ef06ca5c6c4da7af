package stringreader_test

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/CalebQ42/stringreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	rdr := bufio.NewReader(stringreader.New("abc\ndef"))
	line, err := rdr.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "abc\n", line)
	line, err = rdr.ReadString('\n')
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "def", line)
}

func TestChunks(t *testing.T) {
	rdr := stringreader.New("abc\ndef")
	buf := make([]byte, 3)
	for _, want := range []string{"abc", "\nde", "f"} {
		n, err := rdr.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, want, string(buf[:n]))
	}
	n, err := rdr.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestEmpty(t *testing.T) {
	rdr := stringreader.New("")
	assert.Equal(t, 0, rdr.Len())
	n, err := rdr.Read(make([]byte, 10))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestZeroLengthBuffer(t *testing.T) {
	rdr := stringreader.New("hello")
	n, err := rdr.Read(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
	n, err = rdr.Read([]byte{})
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
	assert.Equal(t, 5, rdr.Len())

	_, err = io.ReadAll(rdr)
	require.NoError(t, err)
	n, err = rdr.Read(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}

func TestShortRead(t *testing.T) {
	rdr := stringreader.New("hello")
	buf := make([]byte, 4)
	_, err := rdr.Read(buf)
	require.NoError(t, err)
	buf = make([]byte, 100)
	n, err := rdr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "o", string(buf[:n]))
	assert.Equal(t, 0, rdr.Len())
	assert.Equal(t, int64(5), rdr.Size())
}

func TestExhaustedIsIdempotent(t *testing.T) {
	rdr := stringreader.New("x")
	_, err := io.ReadAll(rdr)
	require.NoError(t, err)
	buf := make([]byte, 8)
	for i := 0; i < 5; i++ {
		n, err := rdr.Read(buf)
		assert.Equal(t, 0, n)
		assert.Equal(t, io.EOF, err)
	}
}

func TestReconstruct(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"abc\ndef",
		"héllo, wörld ✓",
		strings.Repeat("0123456789", 1000),
	}
	for _, in := range inputs {
		for _, size := range []int{1, 2, 3, 7, 64, 4096, 20000} {
			rdr := stringreader.New(in)
			var out strings.Builder
			buf := make([]byte, size)
			for {
				n, err := rdr.Read(buf)
				out.Write(buf[:n])
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				require.NotZero(t, n)
			}
			assert.Equal(t, in, out.String(), "chunk size %d", size)
		}
	}
}

func TestReaderContract(t *testing.T) {
	in := "The quick brown fox\njumps over\nthe lazy dog"
	require.NoError(t, iotest.TestReader(stringreader.New(in), []byte(in)))
}
