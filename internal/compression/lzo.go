package compression

import (
	"io"

	lzo "github.com/rasky/go-lzo"
)

//Lzo only decodes raw LZO1X streams. There's no encoder available.
type Lzo struct {
	//Size of the uncompressed data, if known. Zero lets the decoder grow as needed.
	OutLen int
}

func (l Lzo) Decompress(rdr io.Reader) ([]byte, error) {
	byt, err := lzo.Decompress1X(rdr, 0, l.OutLen)
	if err != nil {
		return nil, err
	}
	return byt, nil
}

func (l Lzo) Compress([]byte) ([]byte, error) {
	return nil, ErrCompressUnsupported
}
