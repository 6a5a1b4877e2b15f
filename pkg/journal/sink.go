package journal

import (
	"fmt"
	"os"
	"sort"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/segmentio/ksuid"
)

// FileExtension is the suffix of journal files created by this
// package.
const FileExtension = ".journal"

const defaultDirPerm os.FileMode = 0750

// FileSink is an append-only Sink over a vfs.File. Sync maps to
// SyncData: the journal needs data durability, not file metadata.
type FileSink struct {
	file vfs.File
	path string
}

// CreateFileSink creates a fresh journal file in dir. Pass nil fs for
// the OS filesystem; tests use vfs.NewMem(). File names are ksuids,
// which sort by creation time, so a lexically sorted directory listing
// yields journal files in the order they were opened.
func CreateFileSink(fs vfs.FS, dir string) (*FileSink, error) {
	if fs == nil {
		fs = vfs.Default
	}
	if err := fs.MkdirAll(dir, defaultDirPerm); err != nil {
		return nil, fmt.Errorf("journal: create dir: %w", err)
	}
	path := fs.PathJoin(dir, ksuid.New().String()+FileExtension)
	file, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("journal: create %s: %w", path, err)
	}
	return &FileSink{file: file, path: path}, nil
}

// Write appends to the journal file.
func (s *FileSink) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

// Sync forces data durability for everything written so far.
func (s *FileSink) Sync() error {
	return s.file.SyncData()
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.file.Close()
}

// Path returns the journal file's path.
func (s *FileSink) Path() string {
	return s.path
}

// OpenFileReader opens an existing journal file for sequential
// reading. Pass nil fs for the OS filesystem.
func OpenFileReader(fs vfs.FS, path string) (*FileReader, error) {
	if fs == nil {
		fs = vfs.Default
	}
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	return NewReader(ReaderConfig{Source: file})
}

// ListFiles returns the journal files in dir in creation order. Pass
// nil fs for the OS filesystem.
func ListFiles(fs vfs.FS, dir string) ([]string, error) {
	if fs == nil {
		fs = vfs.Default
	}
	names, err := fs.List(dir)
	if err != nil {
		return nil, fmt.Errorf("journal: list %s: %w", dir, err)
	}
	var files []string
	for _, name := range names {
		if len(name) > len(FileExtension) && name[len(name)-len(FileExtension):] == FileExtension {
			files = append(files, fs.PathJoin(dir, name))
		}
	}
	// ksuid names sort chronologically.
	sort.Strings(files)
	return files, nil
}
