package compress

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits bundles that are
// archived or shipped over slow links. The pure Go implementation is used
// unless the nobuild tag selects the cgo binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
