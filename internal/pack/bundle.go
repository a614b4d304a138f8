// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/aibor/mountfs/internal/archive"
	"golang.org/x/sync/errgroup"
)

// Write writes the content of fsys as archive in the given format to w.
func Write(ctx context.Context, w io.Writer, fsys fs.FS, format Format) error {
	writer, err := format.NewWriter(w)
	if err != nil {
		return err
	}

	if err := WriteFS(ctx, fsys, writer); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return writer.Close()
}

// Bundle writes exe followed by the archive of fsys and a trailer that
// locates the archive from the end of the output.
//
// If exe is nil, only the bare archive is written without a trailer. It
// returns the size of the archive.
func Bundle(
	ctx context.Context,
	dst io.Writer,
	exe io.Reader,
	fsys fs.FS,
	format Format,
) (int64, error) {
	if exe != nil {
		n, err := io.Copy(dst, exe)
		if err != nil {
			return 0, fmt.Errorf("copy executable: %w", err)
		}

		slog.Debug("Executable written", slog.Int64("size", n))
	}

	size, err := writeArchive(ctx, dst, fsys, format)
	if err != nil {
		return 0, err
	}

	slog.Debug("Archive written",
		slog.Int64("size", size),
		slog.String("format", format.String()),
	)

	if exe == nil {
		return size, nil
	}

	if err := archive.AppendTrailer(dst, size); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return size, nil
}

// writeArchive encodes the archive in a separate goroutine and copies it to
// dst. A failing dst stops the encoder.
func writeArchive(
	ctx context.Context,
	dst io.Writer,
	fsys fs.FS,
	format Format,
) (int64, error) {
	pipeReader, pipeWriter := io.Pipe()
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := Write(ctx, pipeWriter, fsys, format)
		_ = pipeWriter.CloseWithError(err)

		return err
	})

	var written int64

	group.Go(func() error {
		n, err := io.Copy(dst, pipeReader)
		written = n
		_ = pipeReader.CloseWithError(err)

		if err != nil {
			return fmt.Errorf("copy archive: %w", err)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return written, nil
}
