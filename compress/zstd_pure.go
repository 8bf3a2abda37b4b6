//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool reuses klauspost/compress/zstd decoders across
// Decompress calls in this cgo-free build. The library's decoder is
// documented to run allocation-free after a warmup, so a pool lets a
// process decompressing many archived UDF uploads in sequence pay that
// warmup once instead of per blob.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to construct zstd decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool mirrors zstdDecoderPool for the encode side.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to construct zstd encoder: %v", err))
		}

		return encoder
	},
}

// Compress encodes data as a Zstd frame using the pure-Go klauspost/compress
// implementation.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes a Zstd frame produced by Compress, or by the cgo
// gozstd path in a build where cgo is enabled; both emit the standard Zstd
// frame format.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
