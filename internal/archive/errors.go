// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"

	"github.com/aibor/mountfs/internal/backend"
)

var (
	// ErrNoTrailer is returned if a file does not end with a valid trailer.
	ErrNoTrailer = errors.New("no archive trailer")

	// ErrInvalidArgument is returned if an invalid argument is given.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned if a name is not present in an archive.
	ErrNotFound = backend.ErrNotFound

	// ErrCorrupt is returned if headers or data can not be read completely.
	ErrCorrupt = backend.ErrCorruptArchive

	// ErrUnsupportedSource is returned if no supported archive is found.
	ErrUnsupportedSource = backend.ErrUnsupportedSource
)

// PathError records an error and the operation and file path that caused it.
type PathError = backend.PathError
