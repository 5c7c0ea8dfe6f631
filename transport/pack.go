package transport

import (
	"github.com/kagelund/serialcore/codec"
	"github.com/kagelund/serialcore/internal/pool"
	"github.com/kagelund/serialcore/serialerr"
)

const fingerprintSize = 8

// Pack serializes value the same way codec.Serialize does, then compresses
// everything past the 8-byte fingerprint prefix with algo. The result is
// fingerprint || algo-byte || compressed-body, so Hash callers never need
// to know or undo the compression.
func Pack[T any](value T, algo Algorithm, opts ...codec.Option) ([]byte, error) {
	raw, err := codec.Serialize(value, opts...)
	if err != nil {
		return nil, err
	}

	c, err := CreateCodec(algo)
	if err != nil {
		return nil, err
	}

	body, err := c.Compress(raw[fingerprintSize:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, fingerprintSize+1+len(body))
	out = append(out, raw[:fingerprintSize]...)
	out = append(out, byte(algo))
	out = append(out, body...)

	return out, nil
}

// Unpack reverses Pack: it decompresses the body according to the
// algorithm byte that follows the fingerprint, reassembles a plain
// serialcore payload, and hands it to codec.Parse.
func Unpack[T any](data []byte, opts ...codec.Option) (T, error) {
	var zero T

	if len(data) < fingerprintSize+1 {
		return zero, serialerr.ErrBufferOverflow
	}

	fp := data[:fingerprintSize]
	algo := Algorithm(data[fingerprintSize])
	body := data[fingerprintSize+1:]

	c, err := CreateCodec(algo)
	if err != nil {
		return zero, err
	}

	decoded, err := c.Decompress(body)
	if err != nil {
		return zero, err
	}

	bb := pool.GetDecodeBuffer()
	defer pool.PutDecodeBuffer(bb)
	bb.MustWrite(fp)
	bb.MustWrite(decoded)

	raw := make([]byte, bb.Len())
	copy(raw, bb.Bytes())

	return codec.Parse[T](raw, opts...)
}
