//go:build nobuild

package transport

import "github.com/valyala/gozstd"

// ZstdCodec via gozstd trades the pure-Go build for cgo's faster C zstd
// binding. Gated off by default (nobuild) since it requires CGO_ENABLED=1
// and a C toolchain at build time; flip the tag to opt in.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
