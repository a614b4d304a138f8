// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aibor/mountfs"
)

const (
	name = "mountfs"

	maxMountsMin = 1
	maxMountsMax = 64

	maxPathLenMin = 1
	maxPathLenMax = 4096

	usageMessage = `Usage of 'mountfs':
    mountfs [flags...] command [names...]

Commands:
    cat      write the content of the named files to stdout
    stat     print the type of each name: file, dir, other or missing
    mounts   print the mounted paths in search order

Mount a directory and an archive and read a file:
    mountfs -mount ./defaults -mount ./bundle.tar cat etc/config

Later mounts shadow earlier ones. All flags can also be provided via
environment variable MOUNTFS_ARGS or via file ./.mountfs-args, with one
argument per line.
`
)

// Query commands.
const (
	commandCat    = "cat"
	commandStat   = "stat"
	commandMounts = "mounts"
)

var commands = []string{commandCat, commandStat, commandMounts}

// pathList is a [flag.Value] that collects paths in the order given. An
// empty value clears the list.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(s string) error {
	if s == "" {
		*p = nil
		return nil
	}

	*p = append(*p, s)

	return nil
}

type flags struct {
	Mounts     []string
	MaxMounts  uint64
	MaxPathLen uint64
	Command    string
	Names      []string
	Debug      bool
	Version    bool
}

func (f *flags) config() mountfs.Config {
	return mountfs.Config{
		MaxMounts:  int(f.MaxMounts),  //nolint:gosec
		MaxPathLen: int(f.MaxPathLen), //nolint:gosec
	}
}

func newFlagSet(cfg *flags, output io.Writer) *flag.FlagSet {
	fsName := name + " [flags...] command [names...]"
	flagSet := flag.NewFlagSet(fsName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), usageMessage)
		fmt.Fprintln(flagSet.Output(), "\nFlags:")
		flagSet.PrintDefaults()
	}

	flagSet.Var(
		(*pathList)(&cfg.Mounts),
		"mount",
		"directory or archive to mount. Flag may be used more than once. "+
			"Empty value clears the list.",
	)

	flagSet.Var(
		&limitedUintValue{
			Value: &cfg.MaxMounts,
			min:   maxMountsMin,
			max:   maxMountsMax,
		},
		"maxMounts",
		"maximum number of mounts",
	)

	flagSet.Var(
		&limitedUintValue{
			Value: &cfg.MaxPathLen,
			min:   maxPathLenMin,
			max:   maxPathLenMax,
		},
		"maxPathLen",
		"maximum length of mount paths and paths within directories",
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

// fail fails like flag does. It prints the error first and then usage.
func fail(flagSet *flag.FlagSet, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(flagSet.Output(), err.Error())

	flagSet.Usage()

	return err
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	cfg := &flags{
		MaxMounts:  mountfs.DefaultMaxMounts,
		MaxPathLen: mountfs.DefaultMaxPathLen,
	}

	flagSet := newFlagSet(cfg, output)

	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, the command is not required.
	if cfg.Version {
		return cfg, nil
	}

	positionalArgs := flagSet.Args()

	if len(positionalArgs) < 1 {
		return nil, fail(flagSet, "no command given", nil)
	}

	cfg.Command = positionalArgs[0]
	if !slices.Contains(commands, cfg.Command) {
		return nil, fail(flagSet, cfg.Command, ErrUnknownCommand)
	}

	cfg.Names = positionalArgs[1:]

	return cfg, nil
}
