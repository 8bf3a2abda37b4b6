package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool reuses lz4.Compressor values across Compress calls. A
// Compressor keeps an internal hash table sized to the block it last
// compressed, so reusing one across many same-sized UDF blobs (a fleet of
// devices on the same firmware tends to produce similarly sized uploads)
// avoids re-allocating that table on every call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps pierrec/lz4/v4's raw block codec. It decompresses
// faster than either Zstd or S2 at the cost of ratio, which makes it the
// right default for a latency-sensitive live-ingest path rather than cold
// storage.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns an LZ4Compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as a raw LZ4 block using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes a raw LZ4 block produced by Compress.
//
// An LZ4 block carries no header recording its decompressed size, so this
// grows its destination buffer geometrically (starting at 4x the
// compressed size, a typical ratio for delta-encoded sensor data) and
// retries on lz4.ErrInvalidSourceShortBuffer rather than pre-allocating a
// worst-case buffer for every call.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024 // guards against a corrupt block driving unbounded growth

	for bufSize := len(data) * 4; bufSize <= maxSize; bufSize *= 2 {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
