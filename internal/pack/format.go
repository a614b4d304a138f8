// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"fmt"
	"io"
)

// Format is an archive format [Write] can produce.
//
// It implements [flag.Value].
type Format string

// Supported formats.
const (
	FormatTar  Format = "tar"
	FormatCPIO Format = "cpio"
)

// ParseFormat returns the [Format] with the given name.
func ParseFormat(s string) (Format, error) {
	switch format := Format(s); format {
	case FormatTar, FormatCPIO:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatTar)
	}

	return string(*f)
}

// Set parses the given string and sets the format, if valid.
func (f *Format) Set(s string) error {
	format, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = format

	return nil
}

// NewWriter returns a [Writer] for the format writing to w. The zero value
// is [FormatTar].
func (f Format) NewWriter(w io.Writer) (Writer, error) {
	switch f {
	case FormatTar, "":
		return NewTarWriter(w), nil
	case FormatCPIO:
		return NewCPIOWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, string(f))
	}
}
