// Package format defines small wire-level enumerations shared by the
// compress package.
package format

// CompressionType identifies the algorithm, if any, an input blob was
// compressed with before it reaches the UDF header parser.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone means the blob is not compressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
