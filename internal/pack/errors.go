// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import "errors"

var (
	// ErrNotRegularFile is returned if a source file is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrUnknownFormat is returned if an archive format is not supported.
	ErrUnknownFormat = errors.New("unknown archive format")

	// ErrInvalidPattern is returned if an exclude pattern is malformed.
	ErrInvalidPattern = errors.New("invalid pattern")
)
