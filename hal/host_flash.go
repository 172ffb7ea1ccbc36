//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostFlashDefaultPath = "logic.flash"
	// HostFlashSizeBytes matches the default ESP32 "nvs" partition (0x6000).
	HostFlashSizeBytes       = 0x6000
	hostFlashEraseBlockBytes = 4096
)

// FileFlash is a Flash backed by a regular file. It enforces NOR semantics:
// erased bytes are 0xFF and a write may only clear bits.
type FileFlash struct {
	mu      sync.Mutex
	f       *os.File
	size    uint32
	scratch [hostFlashEraseBlockBytes]byte
}

// OpenFileFlash opens (creating if needed) a flash image of size bytes. A new
// or resized image is fully erased. size must be a multiple of the erase
// block.
func OpenFileFlash(path string, size uint32) (*FileFlash, error) {
	if size == 0 || size%hostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("flash: size %d not multiple of erase size %d", size, hostFlashEraseBlockBytes)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash file %q: %w", path, err)
	}

	ff := &FileFlash{f: f, size: size}
	for i := range ff.scratch {
		ff.scratch[i] = 0xFF
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash file %q: %w", path, err)
	}
	if st.Size() != int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("truncate flash file %q to %d: %w", path, size, err)
		}
		if err := ff.Erase(0, size); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("erase flash file %q: %w", path, err)
		}
	}
	return ff, nil
}

// newHostFlash opens the flash image named by LOGIC_FLASH_PATH. When the file
// cannot be used the returned flash reports ErrNotImplemented.
func newHostFlash() *FileFlash {
	path := os.Getenv("LOGIC_FLASH_PATH")
	if path == "" {
		path = hostFlashDefaultPath
	}
	ff, err := OpenFileFlash(path, HostFlashSizeBytes)
	if err != nil {
		return &FileFlash{}
	}
	return ff
}

// Close releases the backing file.
func (f *FileFlash) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// SizeBytes and EraseBlockBytes report the flash geometry.
func (f *FileFlash) SizeBytes() uint32 { return f.size }
func (f *FileFlash) EraseBlockBytes() uint32 {
	return hostFlashEraseBlockBytes
}

func (f *FileFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *FileFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *FileFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return ErrNotImplemented
	}
	if size == 0 {
		return nil
	}
	if off%hostFlashEraseBlockBytes != 0 || size%hostFlashEraseBlockBytes != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	if off >= f.size || off+size > f.size {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}

	for size > 0 {
		if _, err := f.f.WriteAt(f.scratch[:], int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
		off += hostFlashEraseBlockBytes
		size -= hostFlashEraseBlockBytes
	}
	return nil
}
