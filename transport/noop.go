package transport

// NoOpCodec bypasses compression entirely. It is the default Algorithm
// and is useful as a baseline when measuring whether a real codec is
// worth its CPU cost for a given payload shape.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
