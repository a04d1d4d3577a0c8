package document

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/binowl/compress"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/internal/options"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
	"github.com/arloliu/binowl/section"
)

// Decoder reads documents written by an Encoder.
//
// Like Encoder it only holds configuration and is safe for concurrent use.
type Decoder struct {
	cfg *DecoderConfig
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg}, nil
}

// Decode parses data into a document.
//
// Offsets inside the payload are relative to the start of the uncompressed payload.
//
// Parameters:
//   - data: Encoded document, header included
//
// Returns:
//   - owl.Document: Decoded document
//   - error: *errs.FormatError wrapping the sentinel that describes the defect
func (d *Decoder) Decode(data []byte) (owl.Document, error) {
	header, payload, err := d.open(data, d.cfg.verify)
	if err != nil {
		return owl.Document{}, err
	}

	r := encoding.NewReader(payload, header.GetEndianEngine())
	set, err := d.readDictionaries(r, header)
	if err != nil {
		return owl.Document{}, err
	}

	or := &objectReader{r: r, set: set}

	var doc owl.Document
	if doc.IRI, err = set.IRIs.ReadReference(r); err != nil {
		return owl.Document{}, fmt.Errorf("read document IRI: %w", err)
	}
	if doc.Annotations, err = or.readAnnotations(); err != nil {
		return owl.Document{}, fmt.Errorf("read document annotations: %w", err)
	}

	start := r.Offset()
	n, err := r.ReadCount()
	if err != nil {
		return owl.Document{}, fmt.Errorf("read axiom count: %w", err)
	}
	if uint64(n) != uint64(header.AxiomCount) {
		return owl.Document{}, r.FailAt(start, "read axiom count", errs.ErrCountMismatch)
	}

	if n > 0 {
		doc.Axioms = make([]owl.Axiom, n)
		for i := range doc.Axioms {
			if doc.Axioms[i], err = or.readAxiom(); err != nil {
				return owl.Document{}, fmt.Errorf("read axiom %d: %w", i, err)
			}
		}
	}

	if err := r.Finish(); err != nil {
		return owl.Document{}, err
	}

	d.cfg.logger.Debug("decoded document",
		slog.Int("axioms", n),
		slog.Int("payload", len(payload)))

	return doc, nil
}

// Inspect parses the header and the dictionaries without decoding the axiom stream.
// A checksum mismatch is reported in Info rather than as an error.
func (d *Decoder) Inspect(data []byte) (Info, error) {
	header, payload, err := d.open(data, false)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Header:         header,
		CompressedSize: len(data) - section.HeaderSize,
		ChecksumOK:     true,
	}
	if d.cfg.verify {
		info.ChecksumOK = header.Verify(payload) == nil
	}

	r := encoding.NewReader(payload, header.GetEndianEngine())
	set, err := d.readDictionaries(r, header)
	if err != nil {
		return info, err
	}
	info.NamespaceCount = set.IRIs.NamespaceCount()
	info.DictionarySize = r.Offset()

	return info, nil
}

// open validates the header and returns it together with the uncompressed payload.
func (d *Decoder) open(data []byte, verify bool) (section.DictionaryHeader, []byte, error) {
	var header section.DictionaryHeader

	if len(data) < section.HeaderSize {
		return header, nil, errs.NewFormatError(len(data), "read header", errs.ErrTruncated)
	}
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return header, nil, err
	}

	size := int(header.PayloadSize)
	if size > d.cfg.maxPayloadSize {
		return header, nil, errs.NewFormatError(20, "read header",
			fmt.Errorf("%w: %d > %d", errs.ErrPayloadTooLarge, size, d.cfg.maxPayloadSize))
	}

	body := data[section.HeaderSize:]
	comp := header.Flag.GetCompression()

	var payload []byte
	if comp == format.CompressionNone {
		switch {
		case len(body) < size:
			return header, nil, errs.NewFormatError(len(data), "read payload", errs.ErrTruncated)
		case len(body) > size:
			return header, nil, errs.NewFormatError(section.HeaderSize+size, "read payload", errs.ErrTrailingBytes)
		}
		payload = body
	} else {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return header, nil, err
		}

		payload, err = compress.DecompressExpected(codec, body, size)
		if err != nil {
			return header, nil, errs.NewFormatError(section.HeaderSize, "decompress payload", err)
		}
	}

	if verify {
		if err := header.Verify(payload); err != nil {
			return header, nil, err
		}
	}

	d.cfg.logger.Debug("opened document",
		slog.String("compression", comp.String()),
		slog.Bool("big_endian", header.Flag.IsBigEndian()),
		slog.Int("payload", size))

	return header, payload, nil
}

func (d *Decoder) readDictionaries(r *encoding.Reader, header section.DictionaryHeader) (*lookup.Set, error) {
	set, err := lookup.ReadSet(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionaries: %w", err)
	}

	if uint64(set.IRIs.Len()) != uint64(header.IRICount) ||
		uint64(set.Literals.Len()) != uint64(header.LiteralCount) ||
		uint64(set.Annotations.Len()) != uint64(header.AnnotationCount) {
		return nil, errs.NewFormatError(r.Offset(), "read dictionaries", errs.ErrCountMismatch)
	}

	d.cfg.logger.Debug("read dictionaries",
		slog.Int("iris", set.IRIs.Len()),
		slog.Int("literals", set.Literals.Len()),
		slog.Int("annotations", set.Annotations.Len()),
		slog.Int("bytes", r.Offset()))

	return set, nil
}
