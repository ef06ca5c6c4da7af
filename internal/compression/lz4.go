package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

//Lz4 is a Lz4 Compressor/Decompressor
type Lz4 struct {
	HC bool
}

//Decompress decompresses all data from r and returns the uncompressed bytes
func (l *Lz4) Decompress(r io.Reader) ([]byte, error) {
	rdr := lz4.NewReader(r)
	var buf bytes.Buffer
	_, err := io.Copy(&buf, rdr)
	return buf.Bytes(), err
}

//Compress writes a full lz4 frame.
func (l *Lz4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	wrt := lz4.NewWriter(&buf)
	if l.HC {
		err := wrt.Apply(lz4.CompressionLevelOption(lz4.Level9))
		if err != nil {
			return nil, err
		}
	}
	_, err := wrt.Write(data)
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
