package compress

import (
	"fmt"

	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
)

// Compressor compresses an encoded document payload.
//
// The payload is everything that follows the dictionary section header: the three
// dictionaries and the axiom stream. Payloads are dominated by namespace strings and
// one or two byte reference flags, so general purpose codecs do well on them.
//
// The returned slice is owned by the caller and the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload or an error if data is corrupted or
	// was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can decompress into an exactly
// sized buffer when the caller already knows the original length.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes a single payload compression.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty payload.
//
// Values less than 1.0 indicate successful compression.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Returns:
//   - float64: Space savings percentage (0-100)
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: ErrInvalidConfig wrapping an unknown compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidConfig, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidConfig, compressionType)
}

// CompressMeasured compresses data with codec and reports the sizes involved.
func CompressMeasured(codec Codec, algorithm format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	out, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	return out, CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}

// DecompressExpected decompresses data and checks that the result is exactly size bytes.
//
// Codecs implementing SizedDecompressor decompress straight into a buffer of that size.
func DecompressExpected(codec Decompressor, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)

	if sd, ok := codec.(SizedDecompressor); ok {
		out, err = sd.DecompressSize(data, size)
	} else {
		out, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
	}

	if len(out) != size {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d", errs.ErrCorruptPayload, len(out), size)
	}

	return out, nil
}
