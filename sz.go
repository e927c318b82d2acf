package roundtrip

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

func init() {
	RegisterCodec(Sz{})
}

// Sz is the S2 codec (Snappy-derived block format), using the block
// Encode/Decode API with its library-provided worst-case bound.
type Sz struct{}

func (Sz) Name() string { return "s2" }

func (Sz) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	// S2 exposes three effort tiers; spread the level knob across them.
	encode := s2.Encode
	switch {
	case level >= 9:
		encode = s2.EncodeBest
	case level >= 5:
		encode = s2.EncodeBetter
	}
	return &szCompressor{encode: encode}, nil
}

func (Sz) NewDecompressor() (Decompressor, error) {
	return szDecompressor{}, nil
}

type szCompressor struct {
	encode func(dst, src []byte) []byte
}

func (c *szCompressor) Bound(n int) int { return s2.MaxEncodedLen(n) }

func (c *szCompressor) Compress(dst, src []byte) int {
	out := c.encode(nil, src)
	if len(out) == 0 || len(out) > len(dst) {
		return 0
	}
	return copy(dst, out)
}

func (c *szCompressor) Close() error { return nil }

type szDecompressor struct{}

func (szDecompressor) Decompress(dst, src []byte) error {
	out, err := s2.Decode(dst, src)
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

func (szDecompressor) Close() error { return nil }
