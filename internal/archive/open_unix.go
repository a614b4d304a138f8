// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package archive

import (
	"os"

	"golang.org/x/sys/unix"
)

// openFile opens the file at path for reading. Opening does not block on
// FIFOs.
func openFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK, 0) //nolint:wrapcheck
}
