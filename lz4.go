package autodec

import (
	"io"

	"github.com/pierrec/lz4/v3"
)

func init() {
	defaultRegistry.register(LZ4, newLZ4Reader, []byte{0x04, 0x22, 0x4d, 0x18})
}

func newLZ4Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
