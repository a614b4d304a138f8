// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Writer defines the archive writer interface.
type Writer interface {
	WriteRegular(path string, source fs.File, mode fs.FileMode) error
	WriteDirectory(path string) error
	Close() error
}

// WriteFS writes all directories and regular files of fsys with the given
// [Writer].
//
// Other file types are skipped. The root directory itself is not written. The
// context is checked before each entry.
func WriteFS(ctx context.Context, fsys fs.FS, writer Writer) error {
	return fs.WalkDir(fsys, ".", func(path string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		if path == "." {
			return nil
		}

		switch dirEntry.Type() {
		case fs.ModeDir:
			return writer.WriteDirectory(path)
		case 0:
			return writeRegular(fsys, path, writer)
		default:
			slog.Debug("Skip unsupported file type",
				slog.String("path", path),
				slog.String("type", dirEntry.Type().String()),
			)

			return nil
		}
	})
}

func writeRegular(fsys fs.FS, path string, writer Writer) error {
	file, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return writer.WriteRegular(path, file, 0)
}
