package roundtrip

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterCodec(Zstd{})
}

// Zstd is the Zstandard codec, driven through the block-style
// EncodeAll/DecodeAll API rather than streaming, since that is the API
// that hands the caller explicit buffers.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		// An empty payload must still produce a frame, or a bound-sized
		// compression of zero bytes would look like a failure.
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, err
	}
	return &zstdCompressor{enc: enc}, nil
}

func (Zstd) NewDecompressor() (Decompressor, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &zstdDecompressor{dec: dec}, nil
}

// zstdBound: incompressible input is stored in raw blocks of at most
// 128 KiB with 3 bytes of framing each, under a frame header of at most
// 18 bytes. Rounded up generously.
func zstdBound(n int) int {
	return n + 8*(n/(1<<17)+1) + 32
}

type zstdCompressor struct {
	enc *zstd.Encoder
}

func (c *zstdCompressor) Bound(n int) int { return zstdBound(n) }

func (c *zstdCompressor) Compress(dst, src []byte) int {
	out := c.enc.EncodeAll(src, make([]byte, 0, len(dst)))
	if len(out) == 0 || len(out) > len(dst) {
		return 0
	}
	return copy(dst, out)
}

func (c *zstdCompressor) Close() error { return c.enc.Close() }

type zstdDecompressor struct {
	dec *zstd.Decoder
}

func (d *zstdDecompressor) Decompress(dst, src []byte) error {
	out, err := d.dec.DecodeAll(src, dst[:0])
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("decoded %d bytes, expected %d", len(out), len(dst))
	}
	return nil
}

func (d *zstdDecompressor) Close() error {
	d.dec.Close()
	return nil
}
