// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mountfs

import (
	"github.com/aibor/mountfs/internal/archive"
	"github.com/aibor/mountfs/internal/backend"
	"github.com/aibor/mountfs/internal/dirfs"
)

// Backend is the interface of the backing store of a single mount.
type Backend = backend.Backend

// Opener creates a [Backend] for a path.
type Opener struct {
	// Kind names the backend type. It is used for logging only.
	Kind string

	// Open creates the [Backend] for path. maxPathLen is the
	// [Config.MaxPathLen] of the [VFS].
	Open func(path string, maxPathLen int) (Backend, error)
}

// DefaultOpeners returns the [Opener]s that are used if [Config.Openers] is
// empty: archive first, directory second.
func DefaultOpeners() []Opener {
	return []Opener{
		{
			Kind: "archive",
			Open: openArchive,
		},
		{
			Kind: "directory",
			Open: openDirectory,
		},
	}
}

func openArchive(path string, _ int) (Backend, error) {
	fsys, err := archive.Open(path)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return fsys, nil
}

func openDirectory(path string, maxPathLen int) (Backend, error) {
	fsys, err := dirfs.Open(path, maxPathLen)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return fsys, nil
}
