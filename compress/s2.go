package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost/compress/s2, Snappy's faster successor. It
// trades compression ratio for decompression speed, which fits an upload
// pipeline that decompresses far more often than it compresses: a gateway
// ingesting UDF blobs from many devices decompresses every one of them but
// only ever compresses on the device side.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns an S2Compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as an S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block produced by Compress (or by any standard
// S2 encoder; S2 and Snappy frames share a decoder).
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
