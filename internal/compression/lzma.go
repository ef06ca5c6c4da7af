package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

//Lzma is a lzma compressor/decompressor. Uses the classic .lzma format.
type Lzma struct{}

//Decompress decompresses all the data in the given reader and returns the uncompressed bytes.
func (l *Lzma) Decompress(rdr io.Reader) ([]byte, error) {
	r, err := lzma.NewReader(rdr)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//Compress compresses the given data (as a byte array) and returns the compressed data.
func (l *Lzma) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	wrt, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	_, err = wrt.Write(data)
	if err != nil {
		wrt.Close()
		return nil, err
	}
	err = wrt.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
