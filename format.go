package autodec

// Format identifies a compression format. The declaration order of the
// constants is the detection priority order: when the magic bytes of two
// enabled formats both match a prefix, the format declared first wins.
type Format int

const (
	// Raw means no, or no recognized, compression.
	Raw Format = iota
	Gzip
	Zlib
	Bzip2
	LZ4
	Zstd
	XZ
	Snappy
	S2
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Bzip2:
		return "bzip2"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	case XZ:
		return "xz"
	case Snappy:
		return "snappy"
	case S2:
		return "s2"
	}
	return "unknown"
}

// Formats returns the compression formats enabled in this build, in
// detection priority order.
func Formats() []Format {
	var fs []Format
	for _, sig := range defaultRegistry.sigs {
		if len(fs) == 0 || fs[len(fs)-1] != sig.format {
			fs = append(fs, sig.format)
		}
	}
	return fs
}
