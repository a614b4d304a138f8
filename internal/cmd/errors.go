// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if help or version information was requested.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if the build info of the binary can not
	// be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrUnknownCommand is returned for an unsupported query command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingNames is returned if some of the queried names do not exist.
	ErrMissingNames = errors.New("names missing")

	// ErrOutputIsExecutable is returned if the bundle output would overwrite
	// the executable it is created from.
	ErrOutputIsExecutable = errors.New("output is the executable")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
