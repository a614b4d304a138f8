// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/aibor/mountfs"
)

const localConfigFile = ".mountfs-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func newVFS(flags *flags) (*mountfs.VFS, error) {
	vfs := mountfs.New(flags.config())

	for _, path := range flags.Mounts {
		err := vfs.Mount(path)
		if err != nil {
			closeVFS(vfs)
			return nil, err //nolint:wrapcheck
		}
	}

	return vfs, nil
}

func closeVFS(vfs *mountfs.VFS) {
	err := vfs.Close()
	if err != nil {
		slog.Warn("Failed to close mounts", slog.Any("error", err))
	}
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	vfs, err := newVFS(flags)
	if err != nil {
		return err
	}
	defer closeVFS(vfs)

	switch flags.Command {
	case commandCat:
		return cat(ctx, vfs, flags.Names, cfg.Stdout)
	case commandStat:
		return stat(ctx, vfs, flags.Names, cfg.Stdout)
	case commandMounts:
		for _, path := range vfs.Mounts() {
			fmt.Fprintln(cfg.Stdout, path)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, flags.Command)
	}
}

func cat(ctx context.Context, vfs *mountfs.VFS, names []string, output io.Writer) error {
	var missing []string

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		data, err := vfs.ReadFile(name)
		if errors.Is(err, mountfs.ErrNotFound) {
			missing = append(missing, name)
			continue
		} else if err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := output.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return missingError(missing)
}

func stat(ctx context.Context, vfs *mountfs.VFS, names []string, output io.Writer) error {
	var missing []string

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		var fileType string

		switch {
		case vfs.IsFile(name):
			fileType = "file"
		case vfs.IsDir(name):
			fileType = "dir"
		case vfs.Exists(name):
			fileType = "other"
		default:
			fileType = "missing"

			missing = append(missing, name)
		}

		fmt.Fprintf(output, "%s: %s\n", name, fileType)
	}

	return missingError(missing)
}

func missingError(names []string) error {
	if len(names) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrMissingNames, strings.Join(names, ", "))
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	slog.Error(err.Error())

	if errors.Is(err, ErrMissingNames) {
		return 1
	}

	return -1
}

func printVersion(output io.Writer) int {
	buildInfo, err := getBuildInfo()
	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	fmt.Fprintf(output, "Version: %s\n", buildInfo.Main.Version)

	return 0
}

// Run is the main entry point for the mountfs CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		return printVersion(cfg.Stdout)
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
