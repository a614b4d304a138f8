// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/tar"
	"io"

	"github.com/aibor/mountfs/internal/backend"
)

const (
	tarBlockSize = 512

	// Deprecated flag for regular files written by old tar implementations.
	tarTypeRegA = '\x00'
)

type tarFormat struct{}

func (tarFormat) String() string {
	return "tar"
}

// readHeader reads the header with [tar.Reader]. The reader consumes the
// header block along with any preceding extended header records and their
// data. The entry data itself is left unread, so the consumed byte count is
// the offset of the data.
func (tarFormat) readHeader(r io.ReaderAt, pos, size int64) (header, error) {
	counter := &countingReader{
		reader: io.NewSectionReader(r, pos, size-pos),
	}

	hdr, err := tar.NewReader(counter).Next()
	if err != nil {
		return header{}, err //nolint:wrapcheck
	}

	dataLen := hdr.Size
	if tarHeaderOnly(hdr.Typeflag) {
		dataLen = 0
	}

	// Global extended headers are returned with their data already consumed
	// but not the padding following it.
	headerLen := alignUp(counter.count, tarBlockSize)

	return header{
		name:    hdr.Name,
		typ:     tarFileType(hdr.Typeflag),
		size:    dataLen,
		dataPos: pos + counter.count,
		nextPos: pos + headerLen + alignUp(dataLen, tarBlockSize),
	}, nil
}

func tarFileType(flag byte) backend.FileType {
	switch flag {
	case tar.TypeReg, tarTypeRegA:
		return backend.TypeRegular
	case tar.TypeDir:
		return backend.TypeDirectory
	default:
		return backend.TypeOther
	}
}

// tarHeaderOnly reports whether entries of the given type never have data,
// regardless of the size field.
func tarHeaderOnly(flag byte) bool {
	switch flag {
	case tar.TypeLink, tar.TypeSymlink, tar.TypeChar, tar.TypeBlock,
		tar.TypeDir, tar.TypeFifo:
		return true
	default:
		return false
	}
}
