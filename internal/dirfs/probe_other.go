// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package dirfs

import (
	"errors"
	"io"
	"os"

	"github.com/aibor/mountfs/internal/backend"
)

// probe returns the [backend.FileType] of the file at path.
//
// Reading a single directory entry tells directories apart from other files.
func probe(path string) backend.FileType {
	if path == "" {
		return backend.TypeNone
	}

	file, err := os.Open(path)
	if err != nil {
		return backend.TypeNone
	}
	defer file.Close()

	_, err = file.Readdirnames(1)
	if err == nil || errors.Is(err, io.EOF) {
		return backend.TypeDirectory
	}

	return backend.TypeRegular
}

func openFile(path string) (*os.File, error) {
	return os.Open(path) //nolint:wrapcheck
}
