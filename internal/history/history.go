// Package history records successfully evaluated calculator lines, along with
// their results, in a bbolt database.
package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketLines = "lines"

// ErrNotFound is returned when a sequence number has no entry.
var ErrNotFound = errors.New("history entry not found")

// Entry is one recorded line.
type Entry struct {
	Seq    uint64
	Line   string
	Result float64
}

func (ent Entry) String() string { return fmt.Sprintf("%d\t%s\t=> %v", ent.Seq, ent.Line, ent.Result) }

// Store is a bbolt backed history.
type Store struct {
	db *bolt.DB
}

// Open opens, creating if necessary, the history database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("unable to open history %q: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLines))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize history %q: %w", path, err)
	}
	return &Store{db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Add records a line and its result, returning the entry's sequence number.
func (s *Store) Add(line string, result float64) (seq uint64, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLines))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalEntry(line, result))
	})
	return seq, err
}

// Entry returns the entry with the given sequence number.
func (s *Store) Entry(seq uint64) (ent Entry, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketLines)).Get(marshalSeq(seq))
		if v == nil {
			return ErrNotFound
		}
		ent, err = unmarshalEntry(seq, v)
		return err
	})
	return ent, err
}

// Len returns how many entries have been recorded.
func (s *Store) Len() (n int, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketLines)).Stats().KeyN
		return nil
	})
	return n, err
}

// Last returns up to n of the most recent entries, oldest first.
func (s *Store) Last(n int) (ents []Entry, err error) {
	if n <= 0 {
		return nil, nil
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketLines)).Cursor()
		for k, v := c.Last(); k != nil && len(ents) < n; k, v = c.Prev() {
			ent, err := unmarshalEntry(unmarshalSeq(k), v)
			if err != nil {
				return err
			}
			ents = append(ents, ent)
		}
		return nil
	})
	for i, j := 0, len(ents)-1; i < j; i, j = i+1, j-1 {
		ents[i], ents[j] = ents[j], ents[i]
	}
	return ents, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// entries are stored as the result's IEEE 754 bits followed by the line
func marshalEntry(line string, result float64) []byte {
	b := make([]byte, 8, 8+len(line))
	binary.BigEndian.PutUint64(b, math.Float64bits(result))
	return append(b, line...)
}

func unmarshalEntry(seq uint64, v []byte) (Entry, error) {
	if len(v) < 8 {
		return Entry{}, fmt.Errorf("corrupt history entry #%d", seq)
	}
	return Entry{
		Seq:    seq,
		Result: math.Float64frombits(binary.BigEndian.Uint64(v)),
		Line:   string(v[8:]),
	}, nil
}
