package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

//Gzip handles gzip framed data, header and trailer included.
type Gzip struct {
	CompressionLevel int
}

//Decompress reads the entirety of the given reader and returns it uncompressed as a byte slice.
func (g *Gzip) Decompress(r io.Reader) ([]byte, error) {
	rdr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	var data bytes.Buffer
	_, err = io.Copy(&data, rdr)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

//Compress compresses the given data (as a byte array) and returns the compressed data.
func (g *Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	level := g.CompressionLevel
	if level == 0 {
		level = gzip.DefaultCompression
	}
	wrt, err := gzip.NewWriterLevel(&buf, level)
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
