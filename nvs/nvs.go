// Package nvs keeps named integer settings in one erase block of raw flash.
//
// Records are appended to the block as
//
//	0xA5 | len(name) | name | int32 little endian
//
// and the first 0xFF byte marks free space. A later record for the same name
// replaces the earlier one. When the block is full it is erased and the live
// values are written back.
package nvs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"logic/hal"
)

var (
	// ErrInvalidKey indicates an empty or too long key.
	ErrInvalidKey = errors.New("nvs: invalid key")
	// ErrFull indicates that the live values no longer fit the block.
	ErrFull = errors.New("nvs: full")
	// ErrRange indicates a value that does not fit in 32 bits.
	ErrRange = errors.New("nvs: value out of range")
)

// MaxKeyLen is the longest key in bytes.
const MaxKeyLen = 15

const (
	recordMagic = 0xA5
	freeByte    = 0xFF
	headerLen   = 2
	valueLen    = 4
)

// Store is an open settings block. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	flash  hal.Flash // nil for an in-memory store
	size   uint32
	tail   uint32
	values map[string]int32
	order  []string
}

// Open loads the settings from the first erase block of f. A flash that
// reports hal.ErrNotImplemented yields an empty store kept in memory only.
func Open(f hal.Flash) (*Store, error) {
	s := &Store{values: make(map[string]int32)}
	if f == nil {
		return s, nil
	}

	size := f.EraseBlockBytes()
	if sz := f.SizeBytes(); sz < size {
		size = sz
	}
	buf := make([]byte, size)
	n, err := f.ReadAt(buf, 0)
	if errors.Is(err, hal.ErrNotImplemented) {
		return s, nil
	}
	if err != nil && !(errors.Is(err, io.EOF) && n == len(buf)) {
		return nil, fmt.Errorf("nvs: read block: %w", err)
	}
	if size < headerLen+1+valueLen {
		return nil, fmt.Errorf("nvs: block of %d bytes too small", size)
	}

	s.flash = f
	s.size = size
	s.load(buf)
	return s, nil
}

// NewMemory returns a store that is never persisted.
func NewMemory() *Store {
	s, _ := Open(nil)
	return s
}

// Persistent reports whether the store is backed by flash.
func (s *Store) Persistent() bool {
	return s.flash != nil
}

func (s *Store) load(buf []byte) {
	off := uint32(0)
	for off < s.size {
		if buf[off] == freeByte {
			s.tail = off
			return
		}
		name, v, n, ok := decodeRecord(buf[off:])
		if !ok {
			// Unreadable data: keep what was read and compact on the next
			// write.
			s.tail = s.size
			return
		}
		s.put(name, v)
		off += n
	}
	s.tail = s.size
}

func decodeRecord(b []byte) (name string, v int32, n uint32, ok bool) {
	if len(b) < headerLen || b[0] != recordMagic {
		return "", 0, 0, false
	}
	kl := int(b[1])
	if kl == 0 || kl > MaxKeyLen || len(b) < headerLen+kl+valueLen {
		return "", 0, 0, false
	}
	name = string(b[headerLen : headerLen+kl])
	v = int32(binary.LittleEndian.Uint32(b[headerLen+kl:]))
	return name, v, uint32(headerLen + kl + valueLen), true
}

func appendRecord(dst []byte, name string, v int32) []byte {
	dst = append(dst, recordMagic, byte(len(name)))
	dst = append(dst, name...)
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func (s *Store) put(name string, v int32) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = v
}

// LoadInt returns the value stored under name, or def when there is none.
func (s *Store) LoadInt(name string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[name]
	if !ok {
		return def
	}
	return int(v)
}

// SaveInt stores v under name. Saving the value already stored writes
// nothing.
func (s *Store) SaveInt(name string, v int) error {
	if len(name) == 0 || len(name) > MaxKeyLen {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("%w: %s=%d", ErrRange, name, v)
	}
	val := int32(v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.values[name]; ok && old == val {
		return nil
	}
	if s.flash == nil {
		s.put(name, val)
		return nil
	}

	rec := appendRecord(nil, name, val)
	if s.tail+uint32(len(rec)) > s.size {
		return s.compact(name, val)
	}
	if _, err := s.flash.WriteAt(rec, s.tail); err != nil {
		return fmt.Errorf("nvs: write %s: %w", name, err)
	}
	s.tail += uint32(len(rec))
	s.put(name, val)
	return nil
}

// compact erases the block and writes every live value, with name set to v.
// When the erase or the rewrite fails the store reloads what the block holds,
// so it never reports values that are not on flash.
func (s *Store) compact(name string, v int32) error {
	buf := make([]byte, 0, s.size)
	seen := false
	for _, k := range s.order {
		kv := s.values[k]
		if k == name {
			kv, seen = v, true
		}
		buf = appendRecord(buf, k, kv)
	}
	if !seen {
		buf = appendRecord(buf, name, v)
	}
	if uint32(len(buf)) > s.size {
		return fmt.Errorf("%w: %d bytes of values for a %d byte block", ErrFull, len(buf), s.size)
	}

	if err := s.flash.Erase(0, s.size); err != nil {
		s.reload()
		return fmt.Errorf("nvs: erase: %w", err)
	}
	if _, err := s.flash.WriteAt(buf, 0); err != nil {
		s.reload()
		return fmt.Errorf("nvs: rewrite: %w", err)
	}
	s.tail = uint32(len(buf))
	s.put(name, v)
	return nil
}

// reload replaces the values with the contents of the block. An unreadable
// block leaves the store empty and full, so the next save compacts.
func (s *Store) reload() {
	s.values = make(map[string]int32)
	s.order = nil
	buf := make([]byte, s.size)
	n, err := s.flash.ReadAt(buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && n == len(buf)) {
		s.tail = s.size
		return
	}
	s.load(buf)
}

// Keys returns the stored names in the order they were first saved.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}
