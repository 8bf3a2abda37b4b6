// Package compress provides optional decompression codecs for the UDF
// input stage.
//
// Embedded data loggers frequently batch recordings for upload as
// compressed archives. The UDF wire format itself (header + tagged binary
// body, see the header and body packages) carries no compression of its
// own and the spec treats the file-upload surface as an external
// collaborator, so this package sits strictly in front of the decoder:
// the root package's input stage inspects the first few bytes of a blob
// for a known compression magic number and, if found, runs it through the
// matching Codec before the header parser ever sees it. Uncompressed
// input is passed through unchanged.
//
// # Supported algorithms
//
//   - None: blob is UDF bytes already, no magic number recognized
//   - Zstd (format.CompressionZstd): best ratio, cgo gozstd when available,
//     pure-Go klauspost/compress/zstd fallback otherwise
//   - S2 (format.CompressionS2): klauspost/compress/s2, fast with a
//     decent ratio
//   - LZ4 (format.CompressionLZ4): pierrec/lz4/v4, fastest decompression
//
// # Thread safety
//
// All codec implementations are safe for concurrent use; pooled
// encoders/decoders are synchronized internally.
package compress
