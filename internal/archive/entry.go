package archive

import (
	"time"

	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/format"
)

const entryVersion = 1

// encodeEntry writes the metadata record: version, name, size, axiom count,
// compression and the storage time in Unix nanoseconds.
func encodeEntry(e Entry) []byte {
	w := encoding.NewWriter(endian.GetBigEndianEngine())
	defer w.Release()

	w.WriteUint8(entryVersion)
	w.WriteString(e.Name)
	w.WriteUvarint(uint64(e.Size)) //nolint:gosec
	w.WriteUint32(e.Axioms)
	w.WriteUint8(uint8(e.Compression))
	w.WriteUint64(uint64(e.Stored.UnixNano())) //nolint:gosec

	return append([]byte(nil), w.Bytes()...)
}

func decodeEntry(key Key, data []byte) (Entry, error) {
	r := encoding.NewReader(data, endian.GetBigEndianEngine())
	e := Entry{Key: key}

	if _, err := r.ReadUint8(); err != nil {
		return Entry{}, err
	}

	var err error
	if e.Name, err = r.ReadString(); err != nil {
		return Entry{}, err
	}
	size, err := r.ReadUvarint()
	if err != nil {
		return Entry{}, err
	}
	e.Size = int(size) //nolint:gosec
	if e.Axioms, err = r.ReadUint32(); err != nil {
		return Entry{}, err
	}
	comp, err := r.ReadUint8()
	if err != nil {
		return Entry{}, err
	}
	e.Compression = format.CompressionType(comp)
	stored, err := r.ReadUint64()
	if err != nil {
		return Entry{}, err
	}
	e.Stored = time.Unix(0, int64(stored)).UTC() //nolint:gosec

	return e, r.Finish()
}
