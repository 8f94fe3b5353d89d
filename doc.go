// Package autodec provides types and functions to read byte streams in a
// manner that is agnostic to the compression format, or its absence thereof.
//
// For example, if r is a reader over gzip or zstd compressed data,
// NewReader(r) returns an io.ReadCloser that reads the decompressed byte
// stream. If r reads non compressed data, or data that is compressed in a
// non-supported or non-recognized format, then NewReader(r) simply buffers
// and forwards the data in r.
//
// The format is determined by looking at the leading magic bytes only, so
// it's still possible to trick detection into thinking a reader contains
// compressed data while in fact it does not. Formats without a reliable
// magic number (e.g. brotli, raw deflate) are not supported.
//
// Supported formats: gzip, zlib, bzip2, lz4, zstd, xz and snappy. When two
// formats could match the same prefix, the first one in that list wins.
//
// Build tags select alternate decoder implementations:
//
//	gozstd  decode zstd with the cgo bindings of libzstd (valyala/gozstd)
//	        instead of the pure Go klauspost/compress/zstd
//	cgoxz   decode xz with the cgo bindings of liblzma (spencercw/go-xz)
//	        instead of the pure Go ulikunitz/xz
//	s2      decode snappy with klauspost/compress/s2, which also enables
//	        detection of the s2 framing (a superset of snappy)
//	noxz    compile out xz support entirely
//
// cgoxz and noxz are mutually exclusive; enabling both fails the build.
package autodec
