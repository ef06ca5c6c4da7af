// Package stringreader lets a string be consumed through io.Reader, which is
// mostly useful in tests that want a stream without a temporary file.
//
//	rdr := bufio.NewReader(stringreader.New("Line 1\nLine 2"))
//	line, _ := rdr.ReadString('\n') // "Line 1\n"
package stringreader

import "io"

var _ io.Reader = (*StringReader)(nil)

//StringReader reads the bytes of a string from the start to the end.
//It is not safe for concurrent use.
type StringReader struct {
	data   string
	offset int
}

//New wraps s in a StringReader. Strings are immutable so s is not copied.
func New(s string) *StringReader {
	return &StringReader{data: s}
}

//Read copies up to len(b) of the remaining bytes into b. Fewer bytes than
//requested is not an error. Once everything has been read it returns 0, io.EOF
//on every call. An empty b always returns 0, nil and consumes nothing.
func (r *StringReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if r.offset >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.offset:])
	r.offset += n
	return n, nil
}

//Len is the number of bytes that haven't been read yet.
func (r *StringReader) Len() int {
	return len(r.data) - r.offset
}

//Size is the length of the underlying string in bytes.
func (r *StringReader) Size() int64 {
	return int64(len(r.data))
}
