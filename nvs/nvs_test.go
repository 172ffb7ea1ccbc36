package nvs

import (
	"errors"
	"path/filepath"
	"testing"

	"logic/hal"
)

// memFlash is a NOR flash in memory: erased bytes read 0xFF and writes may
// only clear bits.
type memFlash struct {
	data   []byte
	block  uint32
	writes int
	erases int
}

func newMemFlash(size, block uint32) *memFlash {
	f := &memFlash{data: make([]byte, size), block: block}
	for i := range f.data {
		f.data[i] = 0xFF
	}
	return f
}

func (f *memFlash) SizeBytes() uint32       { return uint32(len(f.data)) }
func (f *memFlash) EraseBlockBytes() uint32 { return f.block }

func (f *memFlash) ReadAt(p []byte, off uint32) (int, error) {
	return copy(p, f.data[off:]), nil
}

func (f *memFlash) WriteAt(p []byte, off uint32) (int, error) {
	for i, b := range p {
		if f.data[int(off)+i]&b != b {
			return 0, hal.ErrFlashWriteRequiresErase
		}
	}
	f.writes++
	return copy(f.data[off:], p), nil
}

func (f *memFlash) Erase(off, size uint32) error {
	f.erases++
	for i := off; i < off+size; i++ {
		f.data[i] = 0xFF
	}
	return nil
}

// failingFlash fails every write from the failAfter'th one on, after the
// erase has already blanked the block.
type failingFlash struct {
	*memFlash
	failAfter int
}

func (f *failingFlash) WriteAt(p []byte, off uint32) (int, error) {
	if f.writes >= f.failAfter {
		return 0, errWriteFailed
	}
	return f.memFlash.WriteAt(p, off)
}

var errWriteFailed = errors.New("write failed")

type noFlash struct{ memFlash }

func (noFlash) ReadAt([]byte, uint32) (int, error) { return 0, hal.ErrNotImplemented }

func TestLoadDefault(t *testing.T) {
	s, err := Open(newMemFlash(256, 256))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.LoadInt("intensity", 32); got != 32 {
		t.Fatalf("LoadInt(intensity, 32) = %d; want 32", got)
	}
	if !s.Persistent() {
		t.Fatal("Persistent() = false; want true")
	}
}

func TestSaveReopen(t *testing.T) {
	f := newMemFlash(256, 256)
	s, err := Open(f)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, kv := range []struct {
		k string
		v int
	}{{"intensity", 48}, {"scene", 2}, {"intensity", 64}, {"neg", -70000}} {
		if err := s.SaveInt(kv.k, kv.v); err != nil {
			t.Fatalf("SaveInt(%s, %d): %v", kv.k, kv.v, err)
		}
	}

	s2, err := Open(f)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	tests := []struct {
		k    string
		want int
	}{{"intensity", 64}, {"scene", 2}, {"neg", -70000}, {"missing", 7}}
	for _, tt := range tests {
		if got := s2.LoadInt(tt.k, 7); got != tt.want {
			t.Fatalf("LoadInt(%s) after reopen = %d; want %d", tt.k, got, tt.want)
		}
	}
	if keys := s2.Keys(); len(keys) != 3 || keys[0] != "intensity" {
		t.Fatalf("Keys() = %v; want [intensity scene neg]", keys)
	}
}

func TestRecordLayout(t *testing.T) {
	f := newMemFlash(64, 64)
	s, _ := Open(f)
	if err := s.SaveInt("ab", 0x01020304); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}
	want := []byte{0xA5, 2, 'a', 'b', 0x04, 0x03, 0x02, 0x01, 0xFF}
	for i, b := range want {
		if f.data[i] != b {
			t.Fatalf("data[%d] = %#x; want %#x (% x)", i, f.data[i], b, f.data[:len(want)])
		}
	}
}

func TestSaveUnchangedWritesNothing(t *testing.T) {
	f := newMemFlash(256, 256)
	s, _ := Open(f)
	if err := s.SaveInt("scene", 1); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}
	if err := s.SaveInt("scene", 1); err != nil {
		t.Fatalf("SaveInt again: %v", err)
	}
	if f.writes != 1 {
		t.Fatalf("writes = %d; want 1", f.writes)
	}
}

func TestCompaction(t *testing.T) {
	// "k" records are 7 bytes; a 32 byte block holds four of them.
	f := newMemFlash(64, 32)
	s, _ := Open(f)
	if err := s.SaveInt("a", 1); err != nil {
		t.Fatalf("SaveInt(a): %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := s.SaveInt("k", i); err != nil {
			t.Fatalf("SaveInt(k, %d): %v", i, err)
		}
	}
	if f.erases == 0 {
		t.Fatal("no compaction happened")
	}
	for i := 32; i < 64; i++ {
		if f.data[i] != 0xFF {
			t.Fatalf("byte %d outside the block written", i)
		}
	}

	s2, err := Open(f)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s2.LoadInt("a", 0); got != 1 {
		t.Fatalf("LoadInt(a) = %d; want 1", got)
	}
	if got := s2.LoadInt("k", 0); got != 9 {
		t.Fatalf("LoadInt(k) = %d; want 9", got)
	}
}

func TestCompactionRewriteFails(t *testing.T) {
	// Four 7 byte records fill the 32 byte block; the fifth save compacts.
	f := &failingFlash{memFlash: newMemFlash(32, 32), failAfter: 4}
	s, _ := Open(f)
	for i := 0; i < 4; i++ {
		if err := s.SaveInt("k", i); err != nil {
			t.Fatalf("SaveInt(k, %d): %v", i, err)
		}
	}
	if err := s.SaveInt("k", 9); !errors.Is(err, errWriteFailed) {
		t.Fatalf("SaveInt(k, 9) = %v; want %v", err, errWriteFailed)
	}
	if f.erases != 1 {
		t.Fatalf("erases = %d; want 1", f.erases)
	}
	if got := s.LoadInt("k", -1); got != -1 {
		t.Fatalf("LoadInt(k) after a failed rewrite = %d; want -1 (block is blank)", got)
	}
	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("Keys() = %v; want none", keys)
	}

	f.failAfter = 1 << 30
	if err := s.SaveInt("k", 5); err != nil {
		t.Fatalf("SaveInt(k, 5) after recovery: %v", err)
	}
	s2, _ := Open(f)
	if got := s2.LoadInt("k", -1); got != 5 {
		t.Fatalf("reopened LoadInt(k) = %d; want 5", got)
	}
}

func TestFull(t *testing.T) {
	f := newMemFlash(16, 16)
	s, _ := Open(f)
	if err := s.SaveInt("aaaaaaaaa", 1); err != nil { // 15 bytes
		t.Fatalf("SaveInt: %v", err)
	}
	if err := s.SaveInt("b", 2); !errors.Is(err, ErrFull) {
		t.Fatalf("SaveInt on full block err = %v; want ErrFull", err)
	}
	if got := s.LoadInt("b", -1); got != -1 {
		t.Fatalf("LoadInt(b) after ErrFull = %d; want -1", got)
	}
	if got := s.LoadInt("aaaaaaaaa", 0); got != 1 {
		t.Fatalf("LoadInt(aaaaaaaaa) = %d; want 1", got)
	}
}

func TestInvalid(t *testing.T) {
	s := NewMemory()
	for _, k := range []string{"", "0123456789abcdef"} {
		if err := s.SaveInt(k, 1); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("SaveInt(%q) err = %v; want ErrInvalidKey", k, err)
		}
	}
	if err := s.SaveInt("big", 1<<40); !errors.Is(err, ErrRange) {
		t.Fatalf("SaveInt(1<<40) err = %v; want ErrRange", err)
	}
}

func TestCorruptTail(t *testing.T) {
	f := newMemFlash(64, 64)
	s, _ := Open(f)
	if err := s.SaveInt("x", 5); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}
	f.data[7] = 0x12 // garbage where the next record would start

	s2, err := Open(f)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s2.LoadInt("x", 0); got != 5 {
		t.Fatalf("LoadInt(x) = %d; want 5", got)
	}
	// The next save compacts over the garbage.
	if err := s2.SaveInt("y", 6); err != nil {
		t.Fatalf("SaveInt(y): %v", err)
	}
	s3, _ := Open(f)
	if s3.LoadInt("x", 0) != 5 || s3.LoadInt("y", 0) != 6 {
		t.Fatalf("after compaction x=%d y=%d; want 5 6", s3.LoadInt("x", 0), s3.LoadInt("y", 0))
	}
}

func TestNotImplementedFallsBack(t *testing.T) {
	s, err := Open(&noFlash{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Persistent() {
		t.Fatal("Persistent() = true; want false")
	}
	if err := s.SaveInt("scene", 3); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}
	if got := s.LoadInt("scene", 0); got != 3 {
		t.Fatalf("LoadInt(scene) = %d; want 3", got)
	}
}

func TestFileFlashReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvs.flash")
	f, err := hal.OpenFileFlash(path, hal.HostFlashSizeBytes)
	if err != nil {
		t.Fatalf("OpenFileFlash: %v", err)
	}
	s, err := Open(f)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveInt("intensity", 80); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}
	f.Close()

	f, err = hal.OpenFileFlash(path, hal.HostFlashSizeBytes)
	if err != nil {
		t.Fatalf("reopen flash: %v", err)
	}
	defer f.Close()
	s, err = Open(f)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s.LoadInt("intensity", 32); got != 80 {
		t.Fatalf("LoadInt(intensity) = %d; want 80", got)
	}
}
