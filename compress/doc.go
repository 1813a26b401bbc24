// Package compress provides the compression codecs applied to bundle payloads.
//
// A compact document already drops repeated field names; general-purpose
// compression removes the remaining redundancy (repeated string values, number
// prefixes, bracket runs). Supported algorithms:
//
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: balanced ratio and speed (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// Use CreateCodec or GetCodec to obtain a codec for a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use.
package compress
