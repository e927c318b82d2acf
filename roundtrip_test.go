package roundtrip

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func checkErr(t *testing.T, err error, msgFmt string, args ...interface{}) {
	t.Helper()
	if err == nil {
		return
	}
	args = append(args, err)
	t.Fatalf(msgFmt+": %s", args...)
}

// stubCodec scripts the behavior of its handles so the checker's state
// machine can be exercised without a real compression library.
type stubCodec struct {
	compressorCalls   *int
	decompressorCalls *int

	compress   func(dst, src []byte) int
	decompress func(dst, src []byte) error
}

func (stubCodec) Name() string { return "stub" }

func (s stubCodec) NewCompressor(level int) (Compressor, error) {
	if s.compressorCalls != nil {
		*s.compressorCalls++
	}
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	return stubCompressor{compress: s.compress}, nil
}

func (s stubCodec) NewDecompressor() (Decompressor, error) {
	if s.decompressorCalls != nil {
		*s.decompressorCalls++
	}
	return stubDecompressor{decompress: s.decompress}, nil
}

type stubCompressor struct {
	compress func(dst, src []byte) int
}

func (stubCompressor) Bound(n int) int { return n + 64 }

func (c stubCompressor) Compress(dst, src []byte) int {
	if c.compress == nil {
		return copy(dst, src)
	}
	return c.compress(dst, src)
}

func (stubCompressor) Close() error { return nil }

type stubDecompressor struct {
	decompress func(dst, src []byte) error
}

func (d stubDecompressor) Decompress(dst, src []byte) error {
	if d.decompress == nil {
		copy(dst, src)
		return nil
	}
	return d.decompress(dst, src)
}

func (stubDecompressor) Close() error { return nil }

func TestShortInputSkipsWithoutCodecCalls(t *testing.T) {
	var compressors, decompressors int
	codec := stubCodec{compressorCalls: &compressors, decompressorCalls: &decompressors}

	for _, input := range [][]byte{nil, {}, {0x01}} {
		outcome, err := Check(codec, input)
		checkErr(t, err, "checking %d-byte input", len(input))
		if outcome != Skipped {
			t.Fatalf("%d-byte input: got %s, want %s", len(input), outcome, Skipped)
		}
	}
	if compressors != 0 || decompressors != 0 {
		t.Fatalf("short inputs allocated handles: %d compressors, %d decompressors",
			compressors, decompressors)
	}
}

func TestLevelNormalization(t *testing.T) {
	for _, tc := range []struct {
		raw   byte
		level int
	}{
		{0, 0},
		{12, 12},
		{13, 0},
		{25, 12},
		{255, 255 % 13},
	} {
		params, ok := decode([]byte{tc.raw, 0})
		if !ok {
			t.Fatalf("raw level %d: no parameters derived", tc.raw)
		}
		if params.level != tc.level {
			t.Fatalf("raw level %d: got level %d, want %d", tc.raw, params.level, tc.level)
		}
	}
}

func TestBoundFlagNormalization(t *testing.T) {
	for raw, want := range map[byte]bool{0: false, 1: true, 2: false, 201: true} {
		params, _ := decode([]byte{0, raw})
		if params.useBound != want {
			t.Fatalf("raw flag %d: got useBound=%v, want %v", raw, params.useBound, want)
		}
	}
}

func TestPayloadIsRemainder(t *testing.T) {
	params, _ := decode([]byte{6, 1, 'a', 'b', 'c'})
	if !bytes.Equal(params.payload, []byte("abc")) {
		t.Fatalf("payload = %q, want %q", params.payload, "abc")
	}
}

func TestBoundViolationIsFatal(t *testing.T) {
	codec := stubCodec{compress: func(dst, src []byte) int { return 0 }}

	_, err := Check(codec, []byte{6, 1, 'x', 'y'})
	if !errors.Is(err, ErrBoundViolation) {
		t.Fatalf("got %v, want ErrBoundViolation", err)
	}
}

func TestExactSizeBufferMayDecline(t *testing.T) {
	codec := stubCodec{compress: func(dst, src []byte) int { return 0 }}

	outcome, err := Check(codec, []byte{6, 0, 'x', 'y'})
	checkErr(t, err, "checking declined compression")
	if outcome != Declined {
		t.Fatalf("got %s, want %s", outcome, Declined)
	}
}

func TestDecompressionFailureIsFatal(t *testing.T) {
	codec := stubCodec{decompress: func(dst, src []byte) error {
		return errors.New("corrupt stream")
	}}

	_, err := Check(codec, []byte{6, 1, 'x', 'y'})
	if !errors.Is(err, ErrDecompress) {
		t.Fatalf("got %v, want ErrDecompress", err)
	}
}

func TestRecoveredMismatchIsFatal(t *testing.T) {
	codec := stubCodec{decompress: func(dst, src []byte) error {
		for i := range dst {
			dst[i] = ^src[i]
		}
		return nil
	}}

	_, err := Check(codec, []byte{6, 1, 'x', 'y'})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
}

func TestFaithfulStubVerifies(t *testing.T) {
	outcome, err := Check(stubCodec{}, []byte{6, 0, 'p', 'a', 'y'})
	checkErr(t, err, "checking faithful stub")
	if outcome != Verified {
		t.Fatalf("got %s, want %s", outcome, Verified)
	}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	checkErr(t, os.WriteFile(path, []byte{6, 1, 'd', 'a', 't', 'a'}, 0644), "writing input")

	outcome, err := CheckFile(Deflate{}, path)
	checkErr(t, err, "checking input file")
	if outcome != Verified {
		t.Fatalf("got %s, want %s", outcome, Verified)
	}

	if _, err := CheckFile(Deflate{}, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
