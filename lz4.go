package roundtrip

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func init() {
	RegisterCodec(Lz4{})
}

// Lz4 is the LZ4 frame codec. The frame format stores incompressible
// blocks raw, which is what makes a worst-case bound possible.
type Lz4 struct{}

func (Lz4) Name() string { return "lz4" }

func (Lz4) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	lvl := lz4Level(level)
	return &streamCompressor{
		bound: lz4Bound,
		open: func(w io.Writer) (io.WriteCloser, error) {
			zw := lz4.NewWriter(w)
			if err := zw.Apply(lz4.CompressionLevelOption(lvl)); err != nil {
				return nil, err
			}
			return zw, nil
		},
	}, nil
}

func (Lz4) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	}}, nil
}

// lz4Level maps the harness knob onto the frame compression levels.
func lz4Level(level int) lz4.CompressionLevel {
	levels := []lz4.CompressionLevel{
		lz4.Fast,
		lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
		lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
	}
	if level >= len(levels) {
		return lz4.Level9
	}
	return levels[level]
}

// lz4Bound: 4 bytes of framing per stored block plus frame header,
// trailer, and checksums. The per-64 KiB allowance covers every legal
// block size, not just the 4 MiB default.
func lz4Bound(n int) int {
	return n + 16*(n/(1<<16)+1) + 64
}
