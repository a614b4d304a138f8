// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"io"

	"github.com/aibor/mountfs/internal/backend"
)

// header is the subset of an archive header record required for lookups and
// reads. All positions are relative to the start of the archive stream.
type header struct {
	name    string
	typ     backend.FileType
	size    int64
	dataPos int64
	nextPos int64
}

// format reads header records of one archive format.
type format interface {
	String() string

	// readHeader reads the header record at pos of the archive stream r of
	// the given size. It returns [io.EOF] if the end of the archive is
	// reached.
	readHeader(r io.ReaderAt, pos, size int64) (header, error)
}

// formats in the order they are tried when opening an archive.
var formats = []format{
	tarFormat{},
	cpioFormat{},
}

func alignUp(n, alignment int64) int64 {
	return (n + alignment - 1) / alignment * alignment
}

// countingReader counts the bytes read from the underlying reader.
type countingReader struct {
	reader io.Reader
	count  int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.count += int64(n)

	return n, err //nolint:wrapcheck
}
