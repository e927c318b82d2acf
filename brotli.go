package roundtrip

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	RegisterCodec(Brotli{})
}

// Brotli is the brotli codec. The harness level maps onto brotli's
// quality range 0-11, clamping at the top.
type Brotli struct{}

func (Brotli) Name() string { return "br" }

func (Brotli) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	quality := level
	if quality > brotli.BestCompression {
		quality = brotli.BestCompression
	}
	return &streamCompressor{
		bound: brotliBound,
		open: func(w io.Writer) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, quality), nil
		},
	}, nil
}

func (Brotli) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	}}, nil
}

// brotliBound: uncompressed metablocks carry a few bytes of framing per
// 16 KiB in the encoder's worst case, mirroring the reference
// BrotliEncoderMaxCompressedSize shape with extra slack.
func brotliBound(n int) int {
	return n + 8*(n/(1<<14)+1) + 64
}
