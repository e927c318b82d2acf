package roundtrip

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCodec is returned by ByName for a name that was never registered.
var ErrUnknownCodec = errors.New("no codec registered under that name")

// RegisterCodec registers a codec. It should be called during init.
// Duplicate codecs by name are not allowed and will panic.
func RegisterCodec(codec Codec) {
	name := strings.ToLower(codec.Name())
	if _, ok := codecs[name]; ok {
		panic("codec " + name + " is already registered")
	}
	codecs[name] = codec
}

// ByName returns the codec registered under name (case-insensitive).
func ByName(name string) (Codec, error) {
	codec, ok := codecs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return codec, nil
}

// Names returns the names of all registered codecs, sorted.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var codecs = make(map[string]Codec)
