package archive

import (
	"testing"
	"time"

	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/owl"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openTest(t *testing.T, path string) *Archive {
	t.Helper()

	a, err := Open(path, WithClock(func() time.Time { return fixedTime }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func encodedDocument(t *testing.T, classes ...string) []byte {
	t.Helper()

	var doc owl.Document
	for _, c := range classes {
		doc.Axioms = append(doc.Axioms, owl.Declaration{Entity: owl.Class(owl.NewIRI("http://example.org/onto#" + c))})
	}

	enc, err := document.NewEncoder(document.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	data, _, err := enc.Encode(doc)
	require.NoError(t, err)

	return data
}

func TestArchive_PutGet(t *testing.T) {
	a := openTest(t, "")
	data := encodedDocument(t, "A", "B")

	entry, err := a.Put("first.bin", data)
	require.NoError(t, err)
	require.Equal(t, KeyOf(data), entry.Key)
	require.Equal(t, "first.bin", entry.Name)
	require.Equal(t, len(data), entry.Size)
	require.Equal(t, uint32(2), entry.Axioms)
	require.Equal(t, fixedTime, entry.Stored)

	got, stored, err := a.Get(entry.Key)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.Equal(t, entry, stored)
}

func TestArchive_PutIsIdempotent(t *testing.T) {
	a := openTest(t, "")
	data := encodedDocument(t, "A")

	first, err := a.Put("one", data)
	require.NoError(t, err)
	second, err := a.Put("two", data)
	require.NoError(t, err)
	require.Equal(t, first, second, "re-archiving keeps the original entry")

	entries, err := a.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestArchive_RejectsInvalidDocuments(t *testing.T) {
	a := openTest(t, "")

	_, err := a.Put("junk", []byte("not a document"))
	require.ErrorIs(t, err, errs.ErrTruncated)

	data := encodedDocument(t, "A")
	data[len(data)-1] ^= 0xFF
	_, err = a.Put("corrupt", data)
	require.Error(t, err)
}

func TestArchive_ListAndDelete(t *testing.T) {
	a := openTest(t, "")

	var keys []Key
	for _, names := range [][]string{{"A"}, {"A", "B"}, {"A", "B", "C"}} {
		entry, err := a.Put(names[len(names)-1], encodedDocument(t, names...))
		require.NoError(t, err)
		keys = append(keys, entry.Key)
	}

	entries, err := a.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		require.Negative(t, compareKeys(entries[i-1].Key, entries[i].Key))
	}

	require.NoError(t, a.Delete(keys[1]))
	_, _, err = a.Get(keys[1])
	require.ErrorIs(t, err, errs.ErrNotFound)

	entries, err = a.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func compareKeys(a, b Key) int {
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return 0
}

func TestArchive_Persistent(t *testing.T) {
	dir := t.TempDir()
	data := encodedDocument(t, "Persisted")

	a, err := Open(dir)
	require.NoError(t, err)
	entry, err := a.Put("persisted", data)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b := openTest(t, dir)
	got, _, err := b.Get(entry.Key)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestParseKey(t *testing.T) {
	k := KeyOf([]byte("binowl"))

	parsed, err := ParseKey(k.String())
	require.NoError(t, err)
	require.Equal(t, k, parsed)
	require.Len(t, k.String(), 32)

	_, err = ParseKey("abc")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	_, err = ParseKey("zz" + k.String()[2:])
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestOpen_InvalidOption(t *testing.T) {
	_, err := Open("", WithClock(nil))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestEntry_EncodeDecode(t *testing.T) {
	e := Entry{
		Key:         KeyOf([]byte("x")),
		Name:        "pizza.bin",
		Size:        4096,
		Axioms:      17,
		Compression: format.CompressionZstd,
		Stored:      fixedTime,
	}

	got, err := decodeEntry(e.Key, encodeEntry(e))
	require.NoError(t, err)
	require.Equal(t, e, got)

	_, err = decodeEntry(e.Key, encodeEntry(e)[:5])
	require.ErrorIs(t, err, errs.ErrTruncated)
}
