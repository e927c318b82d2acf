package roundtrip

import (
	"fmt"

	"github.com/golang/snappy"
)

func init() {
	RegisterCodec(Snappy{})
}

// Snappy is the classic Snappy block codec. It has no level knob; the
// level is accepted for contract symmetry and ignored.
type Snappy struct{}

func (Snappy) Name() string { return "snappy" }

func (Snappy) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	return snappyCompressor{}, nil
}

func (Snappy) NewDecompressor() (Decompressor, error) {
	return snappyDecompressor{}, nil
}

type snappyCompressor struct{}

func (snappyCompressor) Bound(n int) int { return snappy.MaxEncodedLen(n) }

func (snappyCompressor) Compress(dst, src []byte) int {
	out := snappy.Encode(nil, src)
	if len(out) == 0 || len(out) > len(dst) {
		return 0
	}
	return copy(dst, out)
}

func (snappyCompressor) Close() error { return nil }

type snappyDecompressor struct{}

func (snappyDecompressor) Decompress(dst, src []byte) error {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("decoded %d bytes, expected %d", len(out), len(dst))
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}
	return nil
}

func (snappyDecompressor) Close() error { return nil }
