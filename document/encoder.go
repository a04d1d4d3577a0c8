package document

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/compress"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/internal/options"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/order"
	"github.com/arloliu/binowl/owl"
	"github.com/arloliu/binowl/section"
)

// Encoder turns documents into the binowl binary form.
//
// An Encoder only holds configuration, so it may be reused and shared between
// goroutines. Every call to Encode builds its own symbol tables.
type Encoder struct {
	cfg   *EncoderConfig
	codec compress.Codec
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Encoder options (byte order, compression, dictionary order, logger)
//
// Returns:
//   - *Encoder: Encoder safe for concurrent use
//   - error: ErrInvalidConfig for invalid options
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, fmt.Errorf("failed to create payload codec: %w", err)
	}

	return &Encoder{cfg: cfg, codec: codec}, nil
}

// Encode serializes doc.
//
// The output depends only on the set of axioms and annotations in doc, never on
// their order: collections are canonicalized, entities are interned in dependency
// order and axioms are written sorted.
//
// Parameters:
//   - doc: Document to serialize
//
// Returns:
//   - []byte: Encoded document
//   - Stats: Header, dictionary sizes, delta statistics and compression figures
//   - error: ErrUnsupportedKind for values the format cannot represent
func (e *Encoder) Encode(doc owl.Document) ([]byte, Stats, error) {
	logger := e.cfg.logger
	canonical := compare.Lexical().CanonicalizeDocument(doc)

	set, err := lookup.NewSet(e.cfg.tableOptions()...)
	if err != nil {
		return nil, Stats{}, err
	}

	if err := internDocument(set, canonical); err != nil {
		return nil, Stats{}, fmt.Errorf("intern document: %w", err)
	}
	set.Freeze()

	cmp := compare.New(set)
	axioms := make([]owl.Axiom, len(canonical.Axioms))
	for i, ax := range canonical.Axioms {
		axioms[i] = cmp.CanonicalizeAxiom(ax)
	}
	cmp.SortAxioms(axioms)

	annotations := append([]owl.Annotation(nil), canonical.Annotations...)
	cmp.SortAnnotations(annotations)

	w := encoding.NewPayloadWriter(e.cfg.engine)
	defer w.Release()

	if err := set.WriteDictionaries(w); err != nil {
		return nil, Stats{}, fmt.Errorf("write dictionaries: %w", err)
	}
	dictSize := w.Len()
	logger.Debug("wrote dictionaries",
		slog.Int("iris", set.IRIs.Len()),
		slog.Int("namespaces", set.IRIs.NamespaceCount()),
		slog.Int("literals", set.Literals.Len()),
		slog.Int("annotations", set.Annotations.Len()),
		slog.Int("bytes", dictSize))

	ow := objectWriter{w: w, set: set}
	set.IRIs.WriteReference(w, canonical.IRI)
	if err := ow.writeAnnotations(annotations); err != nil {
		return nil, Stats{}, fmt.Errorf("write document annotations: %w", err)
	}

	w.WriteCount(len(axioms))
	for i, ax := range axioms {
		if err := ow.writeObject(ax); err != nil {
			return nil, Stats{}, fmt.Errorf("write axiom %d (%s): %w", i, ax.Kind(), err)
		}
	}
	logger.Debug("wrote axioms", slog.Int("axioms", len(axioms)), slog.Int("bytes", w.Len()-dictSize))

	payload := w.Bytes()

	header := section.NewDictionaryHeader()
	header.SetEndianEngine(e.cfg.engine)
	header.Flag.SetSorted(e.cfg.sorted)
	header.Flag.SetLiteralInterning(e.cfg.interning)
	if err := header.SetCounts(set.IRIs.Len(), set.Literals.Len(), set.Annotations.Len(), len(axioms)); err != nil {
		return nil, Stats{}, err
	}
	if err := header.Seal(payload); err != nil {
		return nil, Stats{}, err
	}

	body, cstats, err := e.compressPayload(payload)
	if err != nil {
		return nil, Stats{}, err
	}
	header.Flag.SetCompression(cstats.Algorithm)

	out := make([]byte, 0, section.HeaderSize+len(body))
	out = append(out, header.Bytes()...)
	out = append(out, body...)

	logger.Debug("encoded document",
		slog.String("compression", cstats.Algorithm.String()),
		slog.Int("payload", len(payload)),
		slog.Int("size", len(out)))

	return out, Stats{
		Header:         *header,
		Tables:         set.Stats(),
		Compression:    cstats,
		NamespaceCount: set.IRIs.NamespaceCount(),
		DictionarySize: dictSize,
		EncodedSize:    len(out),
	}, nil
}

// compressPayload applies the configured codec, keeping the payload as-is when
// compression is disabled or does not make it smaller.
func (e *Encoder) compressPayload(payload []byte) ([]byte, compress.CompressionStats, error) {
	none := compress.CompressionStats{
		Algorithm:      format.CompressionNone,
		OriginalSize:   int64(len(payload)),
		CompressedSize: int64(len(payload)),
	}
	if e.cfg.compression == format.CompressionNone || len(payload) == 0 {
		return payload, none, nil
	}

	body, stats, err := compress.CompressMeasured(e.codec, e.cfg.compression, payload)
	switch {
	case errors.Is(err, errs.ErrIncompressible), err == nil && len(body) >= len(payload):
		e.cfg.logger.Debug("payload not compressible, storing uncompressed",
			slog.String("compression", e.cfg.compression.String()),
			slog.Int("payload", len(payload)))

		return payload, none, nil
	case err != nil:
		return nil, compress.CompressionStats{}, fmt.Errorf("compress payload: %w", err)
	default:
		return body, stats, nil
	}
}

// internDocument interns the entities of doc in right-to-left dependency order,
// then every remaining IRI, literal and annotation in axiom order.
func internDocument(set *lookup.Set, doc owl.Document) error {
	orderer := order.NewRightToLeft()
	orderer.AddDocument(doc)

	for _, entity := range orderer.Order() {
		if _, err := set.IRIs.Intern(entity.IRI); err != nil {
			return err
		}
	}

	if !doc.IRI.IsZero() {
		if _, err := set.IRIs.Intern(doc.IRI); err != nil {
			return err
		}
	}

	for _, a := range doc.Annotations {
		if err := set.InternObject(a); err != nil {
			return err
		}
	}

	for _, ax := range doc.Axioms {
		if err := set.InternObject(ax); err != nil {
			return err
		}
	}

	return nil
}
