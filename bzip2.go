package autodec

import (
	"compress/bzip2"
	"io"
)

func init() {
	defaultRegistry.register(Bzip2, newBzip2Reader, []byte("BZh"))
}

// The standard library decoder is the only maintained pure Go bzip2
// implementation around; it's decode-only, which is all we need.
func newBzip2Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(bzip2.NewReader(r)), nil
}
