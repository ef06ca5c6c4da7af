package compression

import (
	"errors"
	"io"
)

var (
	//ErrCompressUnsupported is returned by codecs that can only decode.
	ErrCompressUnsupported = errors.New("compression not supported for this type")
)

//Compressor compresses a full buffer at once.
type Compressor interface {
	Compress([]byte) ([]byte, error)
}

//Decompressor reads all of the given reader and returns the uncompressed data.
type Decompressor interface {
	Decompress(io.Reader) ([]byte, error)
}

//Codec is both halves.
type Codec interface {
	Compressor
	Decompressor
}
