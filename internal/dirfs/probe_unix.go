// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package dirfs

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/aibor/mountfs/internal/backend"
)

// probe returns the [backend.FileType] of the file at path.
//
// Any file that can be opened but is not a directory counts as regular file.
// Opening does not block on FIFOs.
func probe(path string) backend.FileType {
	if tryOpen(path, unix.O_RDONLY|unix.O_DIRECTORY) {
		return backend.TypeDirectory
	}

	if tryOpen(path, unix.O_RDONLY|unix.O_NONBLOCK) {
		return backend.TypeRegular
	}

	return backend.TypeNone
}

func tryOpen(path string, flags int) bool {
	if path == "" {
		return false
	}

	fd, err := unix.Open(path, flags|unix.O_CLOEXEC, 0)
	if err != nil {
		return false
	}

	_ = unix.Close(fd)

	return true
}

// openFile opens the file at path for reading. Opening does not block on
// FIFOs.
func openFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK, 0) //nolint:wrapcheck
}
