// Package compress provides the optional payload codecs of a binowl document.
//
// A document is a dictionary section header followed by a payload holding the IRI,
// literal and annotation dictionaries and the axiom stream. Delta coding already
// shrinks references to one or two bytes, but namespace strings and repeated flag
// patterns still compress well, so the payload can be passed through one of:
//
//   - None (format.CompressionNone): pass-through, the default
//   - Zstd (format.CompressionZstd): best ratio, suited to archives
//   - S2 (format.CompressionS2): fast with a reasonable ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// The header records the algorithm and the uncompressed payload size, so readers use
// DecompressExpected to both decompress and validate the length:
//
//	codec, err := compress.GetCodec(header.Compression())
//	if err != nil {
//		return err
//	}
//	payload, err := compress.DecompressExpected(codec, body, header.PayloadSize)
//
// # Zstd builds
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with cgo enabled
// and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool where they keep encoder state,
// and are safe for concurrent use.
package compress
