// Package compress provides the payload codecs used for metafile-style
// picture data carried in complex properties.
//
// The legacy drawing layer stores metafile picture payloads deflated with
// zlib; everything else travels uncompressed. The package mirrors that: a
// zlib codec for the historical wire format and a passthrough codec for
// payloads that are stored raw.
package compress

// Compressor compresses a payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	// It returns an error if the data is corrupted or was produced by an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}
