// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/mountfs/internal/pack"
)

const (
	bundleFileMode  = 0o755
	archiveFileMode = 0o644
)

func createOutput(path string, executable bool) (*os.File, error) {
	mode := os.FileMode(archiveFileMode)
	if executable {
		mode = bundleFileMode
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return file, nil
}

// sameFile reports whether both paths refer to the same existing file.
func sameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}

	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(infoA, infoB)
}

// outputInDir returns the slash separated path of output relative to dir, if
// output is inside dir.
func outputInDir(dir, output string) (string, bool) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", false
	}

	rel, err := filepath.Rel(absDir, absOutput)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}

func bundleFS(flags *bundleFlags) fs.FS {
	fsys := pack.Exclude(os.DirFS(flags.Dir), flags.Exclude)

	if flags.Output == "" {
		return fsys
	}

	if rel, ok := outputInDir(flags.Dir, flags.Output); ok {
		slog.Debug("Skipping output inside directory", slog.String("path", rel))

		fsys = pack.Without(fsys, rel)
	}

	return fsys
}

func runBundle(ctx context.Context, flags *bundleFlags, cfg IO) error {
	var exe io.Reader

	if flags.Executable != "" {
		if flags.Output != "" && sameFile(flags.Executable, flags.Output) {
			return fmt.Errorf("%w: %s", ErrOutputIsExecutable, flags.Output)
		}

		file, err := os.Open(flags.Executable)
		if err != nil {
			return fmt.Errorf("open executable: %w", err)
		}
		defer file.Close()

		exe = file
	}

	fsys := bundleFS(flags)

	if flags.Output == "" {
		_, err := pack.Bundle(ctx, cfg.Stdout, exe, fsys, flags.Format)
		if err != nil {
			return fmt.Errorf("bundle: %w", err)
		}

		return nil
	}

	output, err := createOutput(flags.Output, exe != nil)
	if err != nil {
		return err
	}

	size, err := pack.Bundle(ctx, output, exe, fsys, flags.Format)
	if err == nil {
		err = output.Close()
	} else {
		_ = output.Close()
	}

	if err != nil {
		removeOutput(flags.Output)
		return fmt.Errorf("bundle: %w", err)
	}

	slog.Debug("Created bundle",
		slog.String("path", flags.Output),
		slog.Int64("archive_size", size),
	)

	return nil
}

func removeOutput(path string) {
	slog.Debug("Removing incomplete output", slog.String("path", path))

	err := os.Remove(path)
	if err != nil {
		slog.Error(
			"Failed to remove incomplete output",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

// RunBundle is the main entry point for the mkbundle CLI command.
func RunBundle(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseBundleArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		return printVersion(cfg.Stdout)
	}

	err = runBundle(ctx, flags, cfg)
	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}
