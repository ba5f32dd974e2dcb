package outfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a one-shot write destination. It holds an exclusive flock on
// the target for its whole lifetime so two writers cannot interleave
// output on the same path.
type File struct {
	f *os.File
}

// Create opens the target path for writing, truncating any previous
// contents, and acquires the lock.
func Create(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file %q for writing: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot acquire lock on file %q: %w", path, err)
	}

	return &File{f: f}, nil
}

// Write writes the data to the underlying file.
func (o *File) Write(data []byte) (int, error) {
	return o.f.Write(data)
}

// Sync flushes the in-memory buffers to the disk.
func (o *File) Sync() error {
	return o.f.Sync()
}

// Close releases the lock and closes the file descriptor.
func (o *File) Close() error {
	if err := unix.Flock(int(o.f.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("cannot unlock lock on file %q: %w", o.f.Name(), err)
	}
	return o.f.Close()
}
