// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aibor/mountfs/internal/backend"
)

var _ backend.Backend = (*FS)(nil)

// FS is a read-only [backend.Backend] for a tar or cpio archive.
//
// Create a new instance with [Open] or [New].
type FS struct {
	source io.ReaderAt
	stream *io.SectionReader
	offset int64
	format format
	index  Index
}

// Open opens the archive file at the given path.
//
// The file is kept open until [FS.Close] is called. It returns a [PathError]
// wrapping [ErrNotFound] if the file can not be opened and
// [ErrUnsupportedSource] if it is not an archive.
func Open(path string) (*FS, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrNotFound, err),
		}
	}

	fsys, err := newFromFile(file)
	if err != nil {
		_ = file.Close()

		return nil, &PathError{
			Op:   "open",
			Path: path,
			Err:  err,
		}
	}

	return fsys, nil
}

func newFromFile(file *os.File) (*FS, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrIO, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file", ErrUnsupportedSource)
	}

	return New(file, info.Size())
}

// New creates a new [FS] for the archive in r of the given size.
//
// The archive may start at the beginning of r or at the position given by the
// trailer at its end. The formats are tried in order tar, cpio. If r
// implements [io.Closer], it is closed by [FS.Close].
func New(r io.ReaderAt, size int64) (*FS, error) {
	var errs []error

	for _, format := range formats {
		offset, err := locate(r, size, format)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", format, err))
			continue
		}

		fsys := &FS{
			source: r,
			stream: io.NewSectionReader(r, offset, size-offset),
			offset: offset,
			format: format,
		}

		err = fsys.buildIndex()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}

		return fsys, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrUnsupportedSource, errors.Join(errs...))
}

// locate returns the position of the first header of the given format in r.
func locate(r io.ReaderAt, size int64, format format) (int64, error) {
	_, err := format.readHeader(r, 0, size)
	if err == nil {
		return 0, nil
	}

	offset, trailerErr := readTrailer(r, size)
	if trailerErr != nil {
		return 0, errors.Join(err, trailerErr)
	}

	_, err = format.readHeader(r, offset, size)
	if err != nil {
		return 0, fmt.Errorf("at trailer offset %d: %w", offset, err)
	}

	return offset, nil
}

// buildIndex scans all header records of the archive. The index is reset on
// failure.
func (fsys *FS) buildIndex() error {
	var (
		index Index
		pos   int64
		size  = fsys.stream.Size()
	)

	for {
		hdr, err := fsys.format.readHeader(fsys.stream, pos, size)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("%w: header at %d: %w", ErrCorrupt, pos, err)
		}

		if hdr.nextPos > size {
			return fmt.Errorf("%w: entry %s exceeds archive", ErrCorrupt, hdr.name)
		}

		index.Add(Hash(backend.TrimDirSuffix(hdr.name)), pos)

		pos = hdr.nextPos
	}

	fsys.index = index

	return nil
}

// Offset returns the position of the archive in the underlying source.
func (fsys *FS) Offset() int64 {
	return fsys.offset
}

// Format returns the name of the archive format.
func (fsys *FS) Format() string {
	return fsys.format.String()
}

// Len returns the number of header records in the archive.
func (fsys *FS) Len() int {
	return fsys.index.Len()
}

// Index returns the entries of the archive index.
func (fsys *FS) Index() []IndexEntry {
	return fsys.index.Entries()
}

// find returns the header for the given name.
//
// All index entries with a matching hash are candidates. Their headers are
// read and the names compared.
func (fsys *FS) find(name string) (header, bool) {
	size := fsys.stream.Size()

	for pos := range fsys.index.Lookup(Hash(name)) {
		hdr, err := fsys.format.readHeader(fsys.stream, pos, size)
		if err != nil {
			continue
		}

		if backend.TrimDirSuffix(hdr.name) == name {
			return hdr, true
		}
	}

	return header{}, false
}

func (fsys *FS) fileType(name string) backend.FileType {
	hdr, found := fsys.find(name)
	if !found {
		return backend.TypeNone
	}

	return hdr.typ
}

// Exists implements [backend.Backend].
func (fsys *FS) Exists(name string) bool {
	_, found := fsys.find(name)
	return found
}

// IsFile implements [backend.Backend].
func (fsys *FS) IsFile(name string) bool {
	return fsys.fileType(name) == backend.TypeRegular
}

// IsDir implements [backend.Backend].
func (fsys *FS) IsDir(name string) bool {
	return fsys.fileType(name) == backend.TypeDirectory
}

// ReadFile implements [backend.Backend].
//
// It returns a [PathError] wrapping [ErrNotFound] if there is no regular file
// with the given name and [ErrCorrupt] if the data can not be read
// completely.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	hdr, found := fsys.find(name)
	if !found || hdr.typ != backend.TypeRegular {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  ErrNotFound,
		}
	}

	data := make([]byte, hdr.size)

	n, err := fsys.stream.ReadAt(data, hdr.dataPos)
	if n < len(data) {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  fmt.Errorf("%w: read %d of %d bytes: %w", ErrCorrupt, n, len(data), err),
		}
	}

	return data, nil
}

// Close implements [backend.Backend].
//
// It closes the underlying source if it implements [io.Closer] and drops the
// index.
func (fsys *FS) Close() error {
	fsys.index = Index{}

	closer, ok := fsys.source.(io.Closer)
	if !ok {
		return nil
	}

	err := closer.Close()
	if err != nil {
		return fmt.Errorf("%w: close: %w", backend.ErrIO, err)
	}

	return nil
}
