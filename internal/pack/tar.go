// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
)

var _ Writer = (*TarWriter)(nil)

// TarWriter implements [Writer] for [tar.Writer].
type TarWriter struct {
	tarWriter *tar.Writer
}

// NewTarWriter creates a new archive writer.
func NewTarWriter(w io.Writer) *TarWriter {
	return &TarWriter{tar.NewWriter(w)}
}

// Close writes the end of archive marker and flushes the data to the
// underlying [io.Writer].
func (w *TarWriter) Close() error {
	err := w.tarWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *TarWriter) writeHeader(hdr *tar.Header) error {
	if err := w.tarWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
// The name is stored with a trailing slash.
func (w *TarWriter) WriteDirectory(path string) error {
	return w.writeHeader(&tar.Header{
		Name:     path + "/",
		Mode:     dirMode,
		Typeflag: tar.TypeDir,
	})
}

// WriteRegular copies the existing file from source into the archive.
func (w *TarWriter) WriteRegular(path string, source fs.File, mode fs.FileMode) error {
	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	header := &tar.Header{
		Name:     path,
		Mode:     fileMode,
		Typeflag: tar.TypeReg,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}

	if mode != 0 {
		header.Mode = int64(mode.Perm())
	}

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := io.Copy(w.tarWriter, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
