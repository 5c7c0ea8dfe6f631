// Package transport wraps a serialcore payload's value region in an
// optional compression layer. A Pack always leaves the 8-byte fingerprint
// prefix raw: Hash and Trace must stay O(1) and compression-agnostic, so
// only the bytes after the fingerprint are ever handed to a Codec (spec
// §6 "byte-container contract").
package transport

import "fmt"

// Algorithm selects which Codec Pack/Unpack use to compress a payload's
// value region.
type Algorithm uint8

const (
	None Algorithm = iota
	Zstd
	S2
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor shrinks an arbitrary byte slice.
//
// Implementations must treat data as read-only and return a newly
// allocated result; callers are free to reuse or discard data immediately
// after the call returns.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores bytes produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// CreateCodec returns the built-in Codec for algo.
func CreateCodec(algo Algorithm) (Codec, error) {
	c, ok := builtinCodecs[algo]
	if !ok {
		return nil, fmt.Errorf("transport: unsupported compression algorithm: %s", algo)
	}

	return c, nil
}

// Stats summarizes one Pack call's compression outcome, for callers that
// want to monitor the effectiveness of a chosen Algorithm.
type Stats struct {
	Algorithm      Algorithm
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize/OriginalSize. Values below 1.0 indicate a
// size reduction; 0.0 if OriginalSize is zero.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}
