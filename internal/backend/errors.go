// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

import (
	"errors"
	"io/fs"
)

var (
	// ErrPathTooLong is returned if a given or concatenated path exceeds the
	// maximum path length.
	ErrPathTooLong = errors.New("path too long")

	// ErrUnsupportedSource is returned if a path can not be used by a
	// backend.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrNotFound is returned if a name does not resolve to an entry.
	ErrNotFound = fs.ErrNotExist

	// ErrCorruptArchive is returned if reading a header or data from an
	// archive did not yield the expected number of bytes.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrIO is returned for underlying read or close failures that are not
	// classified otherwise.
	ErrIO = errors.New("i/o failure")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
