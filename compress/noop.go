package compress

// NoOpCompressor is the identity Codec: it passes a blob through unchanged.
//
// Detect reports format.CompressionNone for any blob that doesn't start
// with one of the recognized magic numbers, which is the common case for a
// logger that uploads UDF bytes directly without wrapping them. NoOpCompressor
// is what GetCodec and CreateCodec return for that case. DecompressIfNeeded
// does not call it: it returns such a blob directly without going through a
// Codec.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns a NoOpCompressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The returned slice aliases data; callers
// must not mutate it afterward.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The returned slice aliases data;
// callers must not mutate it afterward.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
