// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"io"

	"github.com/aibor/mountfs/internal/backend"
	"github.com/cavaliergopher/cpio"
)

const (
	// Size of the SVR4 "newc" header without the name.
	cpioHeaderSize = 110
	cpioAlignment  = 4
	cpioTypeMask   = 0o170000
)

type cpioFormat struct{}

func (cpioFormat) String() string {
	return "cpio"
}

// readHeader reads the SVR4 header with [cpio.Reader]. Positions are
// computed from the record layout: the NUL terminated name follows the
// fixed size header and both header and data are padded to 4 bytes.
func (cpioFormat) readHeader(r io.ReaderAt, pos, size int64) (header, error) {
	reader := cpio.NewReader(io.NewSectionReader(r, pos, size-pos))

	hdr, err := reader.Next()
	if err != nil {
		return header{}, err //nolint:wrapcheck
	}

	dataPos := pos + alignUp(cpioHeaderSize+int64(len(hdr.Name))+1, cpioAlignment)
	fileType := cpioFileType(hdr.Mode)

	// The link target is stored as data. It is consumed by the reader already.
	dataLen := hdr.Size
	if hdr.Mode&cpioTypeMask == cpio.TypeSymlink {
		dataLen = max(dataLen, int64(len(hdr.Linkname)))
	}

	return header{
		name:    hdr.Name,
		typ:     fileType,
		size:    dataLen,
		dataPos: dataPos,
		nextPos: dataPos + alignUp(dataLen, cpioAlignment),
	}, nil
}

func cpioFileType(mode cpio.FileMode) backend.FileType {
	switch mode & cpioTypeMask {
	case cpio.TypeReg:
		return backend.TypeRegular
	case cpio.TypeDir:
		return backend.TypeDirectory
	default:
		return backend.TypeOther
	}
}
