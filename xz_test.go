//go:build !noxz
// +build !noxz

package autodec

import (
	"bytes"
	"io"
	"testing"

	"github.com/ulikunitz/xz"
)

func xzCompress(tb testing.TB, data []byte) []byte {
	tb.Helper()
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		tb.Fatalf("xz: %v", err)
	}
	if _, err := zw.Write(data); err != nil {
		tb.Fatalf("xz: %v", err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("xz: %v", err)
	}
	return buf.Bytes()
}

func TestNewReaderXZ(t *testing.T) {
	for _, want := range [][]byte{testPayload(), {}} {
		r, err := NewReader(bytes.NewReader(xzCompress(t, want)))
		if err != nil {
			t.Fatalf("NewReader returns %v", err)
		}
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("couldn't read all: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got %d bytes, want %d, content differs", len(got), len(want))
		}
		if err := r.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}
}

func TestDetectXZ(t *testing.T) {
	f, decided := Detect([]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, false)
	if !decided || f != XZ {
		t.Errorf("Detect(xz magic) = (%s, %t), want (%s, true)", f, decided, XZ)
	}
}
