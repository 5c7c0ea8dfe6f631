package transport

// ZstdCodec favors compression ratio over speed, suited to payloads bound
// for cold storage or a bandwidth-constrained link where decompression
// happens far less often than compression.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
