//go:build !cgoxz && !noxz
// +build !cgoxz,!noxz

package autodec

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	defaultRegistry.register(XZ, newXZReader, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00})
}

func newXZReader(r io.Reader) (io.ReadCloser, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(xr), nil
}
