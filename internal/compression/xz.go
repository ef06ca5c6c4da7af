package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

//Xz is a xz compressor/decompressor
type Xz struct{}

//Decompress reads the entirety of the given reader and returns it uncompressed as a byte slice.
func (x *Xz) Decompress(r io.Reader) ([]byte, error) {
	rdr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	var data bytes.Buffer
	_, err = io.Copy(&data, rdr)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

//Compress compresses the given data (as a byte array) and returns the compressed data.
func (x *Xz) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	wrt, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	_, err = wrt.Write(data)
	if err != nil {
		wrt.Close()
		return nil, err
	}
	// The stream footer is only written on Close.
	err = wrt.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
