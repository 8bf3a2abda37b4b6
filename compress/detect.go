package compress

import (
	"bytes"

	"github.com/arloliu/udf/format"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	s2Magic   = []byte{0x73, 0x32, 0xd4, 0xff} // S2 "stream" magic chunk
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect inspects the leading bytes of data and reports the compression
// algorithm it appears to be encoded with, or format.CompressionNone if no
// known magic number matches.
//
// Detect never returns an error: an unrecognized prefix is assumed to be an
// uncompressed UDF blob and left to the header parser, which will reject it
// on its own terms if it is not.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// DecompressIfNeeded decompresses data if Detect recognizes a known
// compression magic number, otherwise it returns data unchanged.
func DecompressIfNeeded(data []byte) ([]byte, format.CompressionType, error) {
	algo := Detect(data)
	if algo == format.CompressionNone {
		return data, algo, nil
	}

	codec, err := GetCodec(algo)
	if err != nil {
		return nil, algo, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, algo, err
	}

	return out, algo, nil
}
