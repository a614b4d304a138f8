// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dirfs

import (
	"fmt"
	"io"

	"github.com/aibor/mountfs/internal/backend"
)

var _ backend.Backend = (*FS)(nil)

// FS is a [backend.Backend] for a directory.
type FS struct {
	root       string
	maxPathLen int
}

// Open creates a new [FS] for the directory at root.
//
// Names are appended to root, so they may not form a path longer than
// maxPathLen. It returns a [PathError] wrapping [ErrUnsupportedSource] if
// root is not a directory.
func Open(root string, maxPathLen int) (*FS, error) {
	if probe(root) != backend.TypeDirectory {
		return nil, &PathError{
			Op:   "open",
			Path: root,
			Err:  fmt.Errorf("%w: not a directory", ErrUnsupportedSource),
		}
	}

	return &FS{
		root:       root,
		maxPathLen: maxPathLen,
	}, nil
}

// Root returns the directory path the [FS] was opened for.
func (fsys *FS) Root() string {
	return fsys.root
}

func (fsys *FS) fileType(name string) backend.FileType {
	path, err := backend.ConcatPath(fsys.root, name, fsys.maxPathLen)
	if err != nil {
		return backend.TypeNone
	}

	return probe(path)
}

// Exists implements [backend.Backend].
func (fsys *FS) Exists(name string) bool {
	return fsys.fileType(name) != backend.TypeNone
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
// Names probe as files if they can be opened, so [FS.IsFile] is true for
// FIFOs and devices as well. Reading those fails with
// [ErrUnsupportedSource].
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	path, err := backend.ConcatPath(fsys.root, name, fsys.maxPathLen)
	if err != nil {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  err,
		}
	}

	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	// Only regular files have a defined end.
	if !info.Mode().IsRegular() {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  fmt.Errorf("%w: not a regular file", ErrUnsupportedSource),
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  err,
		}
	}

	return data, nil
}

// Close implements [backend.Backend]. There is nothing to release.
func (*FS) Close() error {
	return nil
}
