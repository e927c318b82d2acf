// Package roundtrip drives compression codecs through adversarial
// round-trip checks. One check turns an arbitrary byte blob into a test
// case (a compression level, a buffer-sizing policy, and a payload),
// compresses the payload, decompresses the result, and verifies that the
// original bytes come back exactly. It is intended to be fed by a fuzzing
// engine, either in-process through Go native fuzzing or one input file
// at a time through cmd/roundtrip.
package roundtrip

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Contract violations reported by Check. Each is fatal to the run: a
// caller driving a fuzzing engine should treat any of them as a found bug
// and abort so the engine preserves the triggering input.
var (
	// ErrBoundViolation means compression failed even though the output
	// buffer was sized to the codec's own worst-case bound.
	ErrBoundViolation = errors.New("compression failed into a bound-sized buffer")

	// ErrDecompress means the codec could not decompress output it had
	// itself produced, or decoded it to the wrong length.
	ErrDecompress = errors.New("decompression of compressor output failed")

	// ErrMismatch means the recovered bytes differ from the original payload.
	ErrMismatch = errors.New("recovered data differs from original payload")
)

// Outcome is the terminal state of one check.
type Outcome int

const (
	// Skipped: the input was too short to derive test parameters.
	// No codec call was made.
	Skipped Outcome = iota

	// Declined: the compressor reported that its output did not fit in
	// the exact-size buffer. Acceptable for incompressible payloads.
	Declined

	// Verified: the payload survived a full compress/decompress round trip.
	Verified

	// Aborted: the codec violated its contract. Always paired with a
	// non-nil error.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Declined:
		return "declined"
	case Verified:
		return "verified"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// parameters is one decoded test case.
type parameters struct {
	level    int
	useBound bool
	payload  []byte
}

// decode derives test parameters from a fuzz input. The first byte picks
// the compression level, the second the buffer-sizing policy, and the
// rest is the payload. Inputs shorter than two bytes carry no test case.
func decode(input []byte) (parameters, bool) {
	if len(input) < 2 {
		return parameters{}, false
	}
	return parameters{
		level:    int(input[0]) % (MaxLevel + 1),
		useBound: input[1]%2 == 1,
		payload:  input[2:],
	}, true
}

// Check runs one round-trip test case decoded from input against codec.
//
// The returned error is nil for every acceptable terminal state and
// non-nil exactly when the codec violated its contract: it wraps
// ErrBoundViolation, ErrDecompress, or ErrMismatch, or it reports a
// handle-allocation failure. Check never retries and keeps no state
// between calls.
func Check(codec Codec, input []byte) (Outcome, error) {
	params, ok := decode(input)
	if !ok {
		return Skipped, nil
	}

	comp, err := codec.NewCompressor(params.level)
	if err != nil {
		return Aborted, fmt.Errorf("%s: allocating compressor at level %d: %w",
			codec.Name(), params.level, err)
	}
	defer comp.Close()

	decomp, err := codec.NewDecompressor()
	if err != nil {
		return Aborted, fmt.Errorf("%s: allocating decompressor: %w", codec.Name(), err)
	}
	defer decomp.Close()

	capacity := len(params.payload)
	if params.useBound {
		capacity = comp.Bound(len(params.payload))
	}

	compressed := make([]byte, capacity)
	csize := comp.Compress(compressed, params.payload)
	if csize == 0 {
		// An under-sized buffer is allowed to fail; a bound-sized one
		// never is.
		if params.useBound {
			return Aborted, fmt.Errorf(
				"%s: %w (level=%d payload=%d capacity=%d)",
				codec.Name(), ErrBoundViolation, params.level, len(params.payload), capacity)
		}
		return Declined, nil
	}

	recovered := make([]byte, len(params.payload))
	if err := decomp.Decompress(recovered, compressed[:csize]); err != nil {
		return Aborted, fmt.Errorf(
			"%s: %w (level=%d payload=%d csize=%d): %v",
			codec.Name(), ErrDecompress, params.level, len(params.payload), csize, err)
	}

	if !bytes.Equal(params.payload, recovered) {
		return Aborted, fmt.Errorf(
			"%s: %w (level=%d payload=%d csize=%d)",
			codec.Name(), ErrMismatch, params.level, len(params.payload), csize)
	}
	return Verified, nil
}

// CheckFile runs Check on the contents of one input file. A read failure
// is an environment fault, reported distinctly from codec violations.
func CheckFile(codec Codec, path string) (Outcome, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return Aborted, fmt.Errorf("reading fuzz input: %w", err)
	}
	return Check(codec, input)
}
