// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dirfs

import "github.com/aibor/mountfs/internal/backend"

var (
	// ErrUnsupportedSource is returned if the path is not a directory.
	ErrUnsupportedSource = backend.ErrUnsupportedSource

	// ErrPathTooLong is returned if root and name exceed the maximum
	// length.
	ErrPathTooLong = backend.ErrPathTooLong
)

// PathError records an error and the operation and file path that caused it.
type PathError = backend.PathError
