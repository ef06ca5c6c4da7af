package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

//Zlib is a zlib compressor/decompressor
type Zlib struct {
	CompressionLevel int
}

//Decompress reads the entirety of the given reader and returns it uncompressed as a byte slice.
func (z *Zlib) Decompress(r io.Reader) ([]byte, error) {
	rdr, err := zlib.NewReader(r)
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
func (z *Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	level := z.CompressionLevel
	if level == 0 {
		level = zlib.DefaultCompression
	}
	wrt, err := zlib.NewWriterLevel(&buf, level)
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
