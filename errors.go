// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mountfs

import (
	"errors"

	"github.com/aibor/mountfs/internal/backend"
)

var (
	// ErrPathTooLong is returned if a path exceeds [Config.MaxPathLen].
	ErrPathTooLong = backend.ErrPathTooLong

	// ErrAlreadyMounted is returned if a path is mounted already.
	ErrAlreadyMounted = errors.New("already mounted")

	// ErrNotMounted is returned if a path to unmount is not mounted.
	ErrNotMounted = errors.New("not mounted")

	// ErrCapacityExceeded is returned if [Config.MaxMounts] paths are
	// mounted already.
	ErrCapacityExceeded = errors.New("mount capacity exceeded")

	// ErrUnsupportedSource is returned if a path is neither an archive nor
	// a directory.
	ErrUnsupportedSource = backend.ErrUnsupportedSource

	// ErrNotFound is returned if a name does not resolve to a regular file in
	// any mount.
	ErrNotFound = backend.ErrNotFound

	// ErrCorruptArchive is returned if an archive header or data can not be
	// read completely.
	ErrCorruptArchive = backend.ErrCorruptArchive

	// ErrIO is returned for read and close failures of the underlying files.
	ErrIO = backend.ErrIO
)

// PathError records an error and the operation and file path that caused it.
type PathError = backend.PathError
