// Package archive stores encoded documents in a Badger database, addressed by
// the 128-bit xxh3 hash of their bytes.
//
// Every snapshot is kept under two keys: "d/<key>" holds the encoded document
// and "m/<key>" a small metadata record. Storing the same bytes twice is a no-op
// that returns the existing entry.
package archive

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/internal/hash"
	"github.com/arloliu/binowl/internal/options"
	badger "github.com/dgraph-io/badger/v4"
)

var (
	dataPrefix = []byte("d/")
	metaPrefix = []byte("m/")
)

// Key is the content address of a snapshot.
type Key [16]byte

// KeyOf returns the content address of data.
func KeyOf(data []byte) Key {
	return Key(hash.ContentKey(data))
}

// ParseKey parses the 32-character hex form returned by Key.String.
func ParseKey(s string) (Key, error) {
	var k Key
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(k) {
		return k, fmt.Errorf("%w: malformed snapshot key %q", errs.ErrInvalidConfig, s)
	}
	copy(k[:], b)

	return k, nil
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Entry describes one archived snapshot.
type Entry struct {
	Key         Key
	Name        string
	Size        int
	Axioms      uint32
	Compression format.CompressionType
	Stored      time.Time
}

// Config holds archive options.
type Config struct {
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Archive.
type Option = options.Option[*Config]

// WithLogger routes archive and Badger log records to logger.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithClock overrides the time source used for Entry.Stored.
func WithClock(now func() time.Time) Option {
	return options.New(func(c *Config) error {
		if now == nil {
			return fmt.Errorf("%w: clock must not be nil", errs.ErrInvalidConfig)
		}
		c.now = now

		return nil
	})
}

// Archive is a content-addressed snapshot store. It is safe for concurrent use.
type Archive struct {
	db      *badger.DB
	cfg     *Config
	decoder *document.Decoder
}

// Open opens or creates the archive at path. An empty path opens an in-memory
// archive that is discarded on Close.
func Open(path string, opts ...Option) (*Archive, error) {
	cfg := &Config{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	bopts := badger.DefaultOptions(path).WithLogger(badgerLogger{cfg.logger})
	if path == "" {
		bopts = bopts.WithInMemory(true)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	decoder, err := document.NewDecoder(document.WithDecoderLogger(cfg.logger))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Archive{db: db, cfg: cfg, decoder: decoder}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Put validates data as an encoded document and stores it under name.
func (a *Archive) Put(name string, data []byte) (Entry, error) {
	info, err := a.decoder.Inspect(data)
	if err != nil {
		return Entry{}, fmt.Errorf("refusing to archive %q: %w", name, err)
	}
	if !info.ChecksumOK {
		return Entry{}, fmt.Errorf("refusing to archive %q: %w", name, errs.ErrChecksumMismatch)
	}

	entry := Entry{
		Key:         KeyOf(data),
		Name:        name,
		Size:        len(data),
		Axioms:      info.Header.AxiomCount,
		Compression: info.Header.Flag.GetCompression(),
		Stored:      a.cfg.now().UTC(),
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(prefixed(metaPrefix, entry.Key))
		switch {
		case err == nil:
			return item.Value(func(val []byte) error {
				existing, err := decodeEntry(entry.Key, val)
				entry = existing

				return err
			})
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		if err := txn.Set(prefixed(dataPrefix, entry.Key), data); err != nil {
			return err
		}

		return txn.Set(prefixed(metaPrefix, entry.Key), encodeEntry(entry))
	})
	if err != nil {
		return Entry{}, fmt.Errorf("failed to store snapshot: %w", err)
	}

	a.cfg.logger.Info("archived snapshot",
		slog.String("key", entry.Key.String()),
		slog.String("name", entry.Name),
		slog.Int("size", entry.Size))

	return entry, nil
}

// Get returns the bytes and metadata of a snapshot. A missing key yields an
// error wrapping errs.ErrNotFound.
func (a *Archive) Get(key Key) ([]byte, Entry, error) {
	var (
		data  []byte
		entry Entry
	)

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefixed(metaPrefix, key))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			entry, err = decodeEntry(key, val)
			return err
		}); err != nil {
			return err
		}

		item, err = txn.Get(prefixed(dataPrefix, key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, Entry{}, fmt.Errorf("%w: snapshot %s", errs.ErrNotFound, key)
	}
	if err != nil {
		return nil, Entry{}, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	return data, entry, nil
}

// List returns every entry in key order.
func (a *Archive) List() ([]Entry, error) {
	var entries []Entry

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = metaPrefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			var key Key
			copy(key[:], item.Key()[len(metaPrefix):])

			if err := item.Value(func(val []byte) error {
				entry, err := decodeEntry(key, val)
				if err != nil {
					return err
				}
				entries = append(entries, entry)

				return nil
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return entries, nil
}

// Delete removes a snapshot. Deleting a missing key is not an error.
func (a *Archive) Delete(key Key) error {
	err := a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(prefixed(dataPrefix, key)); err != nil {
			return err
		}

		return txn.Delete(prefixed(metaPrefix, key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}

	return nil
}

func prefixed(prefix []byte, key Key) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)

	return append(out, key[:]...)
}
