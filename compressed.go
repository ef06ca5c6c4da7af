package stringreader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CalebQ42/stringreader/internal/compression"
)

//Compression is the algorithm a fixture string is compressed with.
type Compression uint8

const (
	None Compression = iota
	Zlib
	Gzip
	Xz
	Lzma
	Lz4
	Zstd
	Lzo
)

var (
	//ErrUnknownCompression is returned when given a Compression that isn't one of the constants.
	ErrUnknownCompression = errors.New("unknown compression type")
	//ErrCompressUnsupported is returned by Compress for types that can only be decoded (Lzo).
	ErrCompressUnsupported = compression.ErrCompressUnsupported
)

var compressionNames = [...]string{
	None: "none",
	Zlib: "zlib",
	Gzip: "gzip",
	Xz:   "xz",
	Lzma: "lzma",
	Lz4:  "lz4",
	Zstd: "zstd",
	Lzo:  "lzo",
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", c)
}

//ParseCompression returns the Compression with the given name. Case doesn't matter.
func ParseCompression(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range compressionNames {
		if n == name {
			return Compression(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

func (c Compression) codec() (compression.Codec, error) {
	switch c {
	case Zlib:
		return &compression.Zlib{}, nil
	case Gzip:
		return &compression.Gzip{}, nil
	case Xz:
		return &compression.Xz{}, nil
	case Lzma:
		return &compression.Lzma{}, nil
	case Lz4:
		return &compression.Lz4{}, nil
	case Zstd:
		return &compression.Zstd{}, nil
	case Lzo:
		return compression.Lzo{}, nil
	}
	return nil, ErrUnknownCompression
}

//NewCompressed decompresses data and returns a StringReader over the result.
//All decoding happens here, so reads from the returned reader never fail.
func NewCompressed(data string, c Compression) (*StringReader, error) {
	if c == None {
		return New(data), nil
	}
	codec, err := c.codec()
	if err != nil {
		return nil, err
	}
	plain, err := codec.Decompress(New(data))
	if err != nil {
		return nil, fmt.Errorf("%v decompression: %w", c, err)
	}
	return New(string(plain)), nil
}

//Compress is the inverse of NewCompressed, for building fixtures.
func Compress(plain string, c Compression) (string, error) {
	if c == None {
		return plain, nil
	}
	codec, err := c.codec()
	if err != nil {
		return "", err
	}
	out, err := codec.Compress([]byte(plain))
	if err != nil {
		return "", fmt.Errorf("%v compression: %w", c, err)
	}
	return string(out), nil
}
