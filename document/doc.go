// Package document encodes and decodes whole ontology documents.
//
// A document is stored as a fixed 32-byte header followed by a payload. The
// payload holds the identifier, literal and annotation dictionaries, the
// document IRI, the document annotations and finally the axioms, written in
// canonical order so that two documents with the same content always encode to
// the same bytes.
//
// # Encoding
//
//	enc, err := document.NewEncoder(
//	    document.WithCompression(format.CompressionZstd),
//	    document.WithLittleEndian(),
//	)
//	data, stats, err := enc.Encode(doc)
//
// # Decoding
//
//	dec, _ := document.NewDecoder()
//	doc, err := dec.Decode(data)
//
// Decode verifies the payload checksum unless WithChecksumVerification(false)
// is given. Inspect reads the header and dictionaries without decoding axioms.
//
// Malformed input is reported as an *errs.FormatError carrying the offending
// byte offset. Offsets below 32 refer to the header, the rest to the
// decompressed payload.
package document
