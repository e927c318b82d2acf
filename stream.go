package roundtrip

import (
	"bytes"
	"errors"
	"io"
)

// Plumbing shared by the codecs that only expose streaming writers and
// readers (deflate, gzip, zlib, lz4 frames, brotli, bzip2). It adapts
// them to the fixed-capacity compress / exact-length decompress contract
// of the Compressor and Decompressor interfaces.

var (
	errCapacity = errors.New("output exceeds buffer capacity")
	errTrailing = errors.New("stream continues past expected output length")
)

// capWriter writes into a fixed-size buffer and fails once the buffer is
// full. A write that would overflow is rejected whole.
type capWriter struct {
	buf []byte
	n   int
}

func (cw *capWriter) Write(p []byte) (int, error) {
	if len(p) > len(cw.buf)-cw.n {
		return 0, errCapacity
	}
	cw.n += copy(cw.buf[cw.n:], p)
	return len(p), nil
}

// compressStream writes src through a freshly opened compressing writer
// into dst. It returns the number of compressed bytes, or 0 if dst was
// too small or the writer could not be opened.
func compressStream(dst, src []byte, open func(io.Writer) (io.WriteCloser, error)) int {
	cw := &capWriter{buf: dst}
	wc, err := open(cw)
	if err != nil {
		return 0
	}
	if _, err := wc.Write(src); err != nil {
		wc.Close()
		return 0
	}
	if err := wc.Close(); err != nil {
		return 0
	}
	return cw.n
}

// decompressStream expands src through a decompressing reader into dst
// and verifies that the stream ends exactly at len(dst) bytes. Container
// trailers (gzip CRC, zlib Adler-32...) are validated by the final read
// reaching a clean EOF.
func decompressStream(dst, src []byte, open func(io.Reader) (io.ReadCloser, error)) error {
	rc, err := open(bytes.NewReader(src))
	if err != nil {
		return err
	}
	defer rc.Close()

	if _, err := io.ReadFull(rc, dst); err != nil {
		return err
	}
	var tail [1]byte
	switch _, err := io.ReadFull(rc, tail[:]); err {
	case io.EOF:
		return nil
	case nil:
		return errTrailing
	default:
		return err
	}
}

// streamCompressor adapts an open-writer function to the Compressor
// interface for codecs whose handles carry no other state.
type streamCompressor struct {
	bound func(n int) int
	open  func(io.Writer) (io.WriteCloser, error)
}

func (sc *streamCompressor) Bound(n int) int { return sc.bound(n) }

func (sc *streamCompressor) Compress(dst, src []byte) int {
	return compressStream(dst, src, sc.open)
}

func (sc *streamCompressor) Close() error { return nil }

// streamDecompressor adapts an open-reader function to the Decompressor
// interface.
type streamDecompressor struct {
	open func(io.Reader) (io.ReadCloser, error)
}

func (sd *streamDecompressor) Decompress(dst, src []byte) error {
	return decompressStream(dst, src, sd.open)
}

func (sd *streamDecompressor) Close() error { return nil }

// levelInRange rejects levels outside the harness knob range.
func levelInRange(level int) error {
	if level < MinLevel || level > MaxLevel {
		return errors.New("compression level out of range")
	}
	return nil
}
