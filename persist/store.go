// Package persist keeps GUI widget state in a bbolt database so it survives
// restarts.
package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	gui "github.com/go-theft-auto/guitext"
)

// Bucket names.
const (
	BucketTextEdit = "text_edit"
)

// DB is an open state database.
type DB struct {
	db *bolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state db %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close closes the database. Stores must be flushed first.
func (d *DB) Close() error {
	return d.db.Close()
}

// Codec converts values to and from their stored form.
type Codec[T any] interface {
	Marshal(v T) []byte
	Unmarshal(data []byte) (T, error)
}

// Store is a gui.StateStore backed by one bucket. Reads and writes hit an
// in-memory copy; Flush writes changed entries in a single transaction.
type Store[T any] struct {
	db     *bolt.DB
	bucket []byte
	codec  Codec[T]

	values  map[gui.ID]T
	encoded map[gui.ID][]byte
	dirty   map[gui.ID]bool // true: put, false: delete
}

// NewStore opens bucket, creating it if needed, and loads its entries.
// Entries that fail to decode are skipped.
func NewStore[T any](d *DB, bucket string, codec Codec[T]) (*Store[T], error) {
	s := &Store[T]{
		db:      d.db,
		bucket:  []byte(bucket),
		codec:   codec,
		values:  make(map[gui.ID]T),
		encoded: make(map[gui.ID][]byte),
		dirty:   make(map[gui.ID]bool),
	}

	err := d.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			if len(k) != 8 {
				return nil
			}
			val, err := codec.Unmarshal(v)
			if err != nil {
				return nil
			}
			id := gui.ID(binary.BigEndian.Uint64(k))
			s.values[id] = val
			s.encoded[id] = append([]byte(nil), v...)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load bucket %s: %w", bucket, err)
	}
	return s, nil
}

// Get implements gui.StateStore.
func (s *Store[T]) Get(id gui.ID) (T, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Set implements gui.StateStore. Writing an unchanged value is free.
func (s *Store[T]) Set(id gui.ID, value T) {
	data := s.codec.Marshal(value)
	if old, ok := s.encoded[id]; ok && bytes.Equal(old, data) {
		return
	}
	s.values[id] = value
	s.encoded[id] = data
	s.dirty[id] = true
}

// Delete removes the entry for id.
func (s *Store[T]) Delete(id gui.ID) {
	if _, ok := s.values[id]; !ok {
		return
	}
	delete(s.values, id)
	delete(s.encoded, id)
	s.dirty[id] = false
}

// Len returns the number of entries.
func (s *Store[T]) Len() int {
	return len(s.values)
}

// Pending returns the number of changes not yet flushed.
func (s *Store[T]) Pending() int {
	return len(s.dirty)
}

// Flush implements gui.Flusher.
func (s *Store[T]) Flush() error {
	if len(s.dirty) == 0 {
		return nil
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		for id, put := range s.dirty {
			k := idKey(id)
			if !put {
				if err := b.Delete(k); err != nil {
					return err
				}
				continue
			}
			if err := b.Put(k, s.encoded[id]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("flush bucket %s: %w", s.bucket, err)
	}
	clear(s.dirty)
	return nil
}

func idKey(id gui.ID) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(id))
	return k[:]
}

// TextEditCodec stores a text editor's cursor as a decimal character offset,
// or "-" when no cursor was placed yet.
type TextEditCodec struct{}

// Marshal implements Codec.
func (TextEditCodec) Marshal(s gui.TextEditState) []byte {
	if !s.HasCursor {
		return []byte("-")
	}
	return []byte(strconv.Itoa(s.Cursor))
}

// Unmarshal implements Codec.
func (TextEditCodec) Unmarshal(data []byte) (gui.TextEditState, error) {
	if string(data) == "-" {
		return gui.TextEditState{}, nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return gui.TextEditState{}, fmt.Errorf("bad cursor %q: %w", data, err)
	}
	if n < 0 {
		return gui.TextEditState{}, fmt.Errorf("negative cursor %d", n)
	}
	return gui.TextEditState{Cursor: n, HasCursor: true}, nil
}

// TextEditStore returns the store for text editor cursors.
func TextEditStore(d *DB) (*Store[gui.TextEditState], error) {
	return NewStore[gui.TextEditState](d, BucketTextEdit, TextEditCodec{})
}
