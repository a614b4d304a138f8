// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// TrailerMagic marks an archive appended to another file.
const TrailerMagic = "TAR\x00"

// TrailerSize is the size of the trailer at the end of a file with an
// appended archive.
const TrailerSize = 8

// Trailer returns the trailer for an archive of the given size that is
// directly followed by the trailer itself.
func Trailer(archiveSize int64) ([]byte, error) {
	distance := archiveSize + TrailerSize
	if archiveSize < 0 || distance > math.MaxUint32 {
		return nil, fmt.Errorf("archive size %d: %w", archiveSize, ErrInvalidArgument)
	}

	trailer := make([]byte, 0, TrailerSize)
	trailer = append(trailer, TrailerMagic...)
	trailer = binary.LittleEndian.AppendUint32(trailer, uint32(distance))

	return trailer, nil
}

// AppendTrailer writes the [Trailer] for an archive of the given size to w.
func AppendTrailer(w io.Writer, archiveSize int64) error {
	trailer, err := Trailer(archiveSize)
	if err != nil {
		return err
	}

	_, err = w.Write(trailer)
	if err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}

	return nil
}

// readTrailer returns the position the archive starts at, read from the
// trailer at the end of r with the given size.
func readTrailer(r io.ReaderAt, size int64) (int64, error) {
	if size < TrailerSize {
		return 0, ErrNoTrailer
	}

	var buf [TrailerSize]byte

	n, err := r.ReadAt(buf[:], size-TrailerSize)
	if n < TrailerSize {
		return 0, fmt.Errorf("read trailer: %w", err)
	}

	if string(buf[:len(TrailerMagic)]) != TrailerMagic {
		return 0, ErrNoTrailer
	}

	distance := int64(binary.LittleEndian.Uint32(buf[len(TrailerMagic):]))
	if distance < TrailerSize || distance > size {
		return 0, fmt.Errorf("%w: distance %d out of range", ErrNoTrailer, distance)
	}

	return size - distance, nil
}
