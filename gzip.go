package autodec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	defaultRegistry.register(Gzip, newGzipReader, []byte{0x1f, 0x8b})
}

func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
