// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/aibor/mountfs/internal/pack"
)

const (
	bundleName = "mkbundle"

	bundleUsageMessage = `Usage of 'mkbundle':
    mkbundle [flags...] dir

Write the content of dir as archive. With -exe, the archive is appended to a
copy of the given executable, so it can mount itself:
    mkbundle -exe ./app -o ./app.bundled ./assets

Without -o, the output is written to stdout. Only directories and regular
files are added.
`
)

type bundleFlags struct {
	Executable string
	Output     string
	Dir        string
	Format     pack.Format
	Exclude    pack.Excludes
	Debug      bool
	Version    bool
}

func newBundleFlagSet(cfg *bundleFlags, output io.Writer) *flag.FlagSet {
	fsName := bundleName + " [flags...] dir"
	flagSet := flag.NewFlagSet(fsName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), bundleUsageMessage)
		fmt.Fprintln(flagSet.Output(), "\nFlags:")
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(
		&cfg.Executable,
		"exe",
		cfg.Executable,
		"executable to append the archive to",
	)

	flagSet.StringVar(
		&cfg.Output,
		"o",
		cfg.Output,
		"output file (default stdout)",
	)

	flagSet.Var(
		&cfg.Format,
		"format",
		"archive format: tar, cpio",
	)

	flagSet.Var(
		&cfg.Exclude,
		"exclude",
		"doublestar pattern of paths to leave out, like **/*.tmp. Flag may be "+
			"used more than once.",
	)

	flagSet.BoolVar(
		&cfg.Debug,
		"debug",
		cfg.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&cfg.Version,
		"version",
		cfg.Version,
		"show version and exit",
	)

	return flagSet
}

func parseBundleArgs(args []string, output io.Writer) (*bundleFlags, error) {
	cfg := &bundleFlags{
		Format: pack.FormatTar,
	}

	flagSet := newBundleFlagSet(cfg, output)

	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	if cfg.Version {
		return cfg, nil
	}

	positionalArgs := flagSet.Args()

	switch len(positionalArgs) {
	case 0:
		return nil, fail(flagSet, "no directory given", nil)
	case 1:
		cfg.Dir = positionalArgs[0]
	default:
		return nil, fail(flagSet, "only one directory allowed", nil)
	}

	return cfg, nil
}
