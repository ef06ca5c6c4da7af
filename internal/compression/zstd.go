package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

//Zstd is a zstd compressor/decompressor
type Zstd struct {
	CompressionLevel int
}

//Decompress decompresses all data from the reader and returns the uncompressed data
func (z *Zstd) Decompress(r io.Reader) ([]byte, error) {
	rdr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	var buf bytes.Buffer
	_, err = io.Copy(&buf, rdr)
	return buf.Bytes(), err
}

//Compress impelements compression.Compress
func (z *Zstd) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	level := zstd.SpeedDefault
	if z.CompressionLevel != 0 {
		level = zstd.EncoderLevelFromZstd(z.CompressionLevel)
	}
	w, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, err
	}
	_, err = w.Write(data)
	if err != nil {
		w.Close()
		return nil, err
	}
	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
