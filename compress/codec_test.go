package compress

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/stretchr/testify/require"
)

func allCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionZstd: NewZstdCompressor(),
	}
}

// payloadLike mimics a dictionary section: repeated namespaces and short fragments
// followed by runs of one and two byte reference flags.
func payloadLike(entries int) []byte {
	var buf bytes.Buffer
	for i := range entries {
		fmt.Fprintf(&buf, "http://www.example.org/ontology/pizza#Topping%d", i)
		buf.WriteByte(0)
	}
	for i := range entries {
		buf.WriteByte(byte(0x40 | i%4))
		buf.WriteByte(byte(i % 7))
	}

	return buf.Bytes()
}

func TestCompressionStats_Calculations(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	require.Zero(t, empty.CompressionRatio())
	require.Zero(t, empty.SpaceSavings())
}

func TestCreateCodec(t *testing.T) {
	for ct := range allCodecs() {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0x7f), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	require.Contains(t, err.Error(), "payload")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestNoOpCompressor_NoCopy(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("owl")

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for ct, codec := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{8, 64, 1024, 16 * 1024}

	for ct, codec := range allCodecs() {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/%d", ct, n), func(t *testing.T) {
				data := payloadLike(n)

				compressed, stats, err := CompressMeasured(codec, ct, data)
				require.NoError(t, err)
				require.Equal(t, ct, stats.Algorithm)
				require.Equal(t, int64(len(data)), stats.OriginalSize)
				require.Equal(t, int64(len(compressed)), stats.CompressedSize)
				if ct != format.CompressionNone {
					require.Less(t, stats.CompressionRatio(), 1.0)
				}

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)

				decompressed, err = DecompressExpected(codec, compressed, len(data))
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestDecompressExpected_SizeMismatch(t *testing.T) {
	data := payloadLike(32)

	for ct, codec := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			_, err = DecompressExpected(codec, compressed, len(data)+1)
			require.ErrorIs(t, err, errs.ErrCorruptPayload)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for ct, codec := range allCodecs() {
		if ct == format.CompressionNone {
			continue
		}
		t.Run(ct.String(), func(t *testing.T) {
			_, err := DecompressExpected(codec, garbage, 64)
			require.ErrorIs(t, err, errs.ErrCorruptPayload)
		})
	}
}

func TestLZ4Compressor_Incompressible(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}

	_, err := NewLZ4Compressor().Compress(data)
	require.ErrorIs(t, err, errs.ErrIncompressible)
}

func TestLZ4Compressor_GrowsBuffer(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 64*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := payloadLike(256)

	for ct, codec := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 8)
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 20 {
						compressed, err := codec.Compress(data)
						if err != nil {
							errCh <- err
							return
						}
						out, err := codec.Decompress(compressed)
						if err != nil {
							errCh <- err
							return
						}
						if !bytes.Equal(out, data) {
							errCh <- fmt.Errorf("%s: round trip mismatch", ct)
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	data := payloadLike(4096)

	for ct, codec := range allCodecs() {
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				compressed, _ := codec.Compress(data)
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
