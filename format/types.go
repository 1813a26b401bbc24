package format

type (
	Kind            uint8
	CompressionType uint8
)

const (
	KindNull    Kind = 0x1 // KindNull represents the JSON null literal.
	KindBoolean Kind = 0x2 // KindBoolean represents true or false.
	KindNumber  Kind = 0x3 // KindNumber represents a JSON number.
	KindString  Kind = 0x4 // KindString represents a JSON string.
	KindArray   Kind = 0x5 // KindArray represents a JSON array.
	KindObject  Kind = 0x6 // KindObject represents a JSON object.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is one of the six JSON value kinds.
func (k Kind) IsValid() bool {
	return k >= KindNull && k <= KindObject
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a codec name ("none", "zstd", "s2", "lz4") to its CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
