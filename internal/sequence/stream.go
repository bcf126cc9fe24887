package sequence

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Stream is a rewindable decompressing reader over a gzip file.
type Stream struct {
	path string
	file *os.File
	gz   *gzip.Reader
}

// Open opens path and prepares a gzip reader over it.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read gzip header of %s: %w", path, err)
	}

	return &Stream{path: path, file: f, gz: gz}, nil
}

// Path returns the file the stream was opened over.
func (s *Stream) Path() string {
	return s.path
}

// Read reads decompressed bytes.
func (s *Stream) Read(p []byte) (int, error) {
	if s.gz == nil {
		return 0, os.ErrClosed
	}
	return s.gz.Read(p)
}

// Rewind moves the stream back to the first decompressed byte. The
// underlying file and gzip reader are reused rather than reopened.
func (s *Stream) Rewind() error {
	if s.gz == nil {
		return os.ErrClosed
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", s.path, err)
	}
	if err := s.gz.Reset(s.file); err != nil {
		return fmt.Errorf("reset gzip reader for %s: %w", s.path, err)
	}
	return nil
}

// Close releases the gzip reader and the file. Calling it again is a no-op.
func (s *Stream) Close() error {
	if s.gz == nil {
		return nil
	}
	gzErr := s.gz.Close()
	fileErr := s.file.Close()
	s.gz = nil
	s.file = nil
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}
