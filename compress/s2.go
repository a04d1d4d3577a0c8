package compress

import (
	"fmt"

	"github.com/arloliu/binowl/errs"
	"github.com/klauspost/compress/s2"
)

// S2Compressor uses the S2 block format, an extension of Snappy.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decodes an S2 block whose original size is known. The length
// recorded in the block is checked before anything is allocated.
//
// Parameters:
//   - data: Compressed block
//   - size: Expected decompressed size, taken from the section header
//
// Returns:
//   - []byte: Decompressed data of exactly size bytes
//   - error: errs.ErrCorruptPayload when the recorded length differs from size
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: block holds %d bytes, expected %d", errs.ErrCorruptPayload, n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
