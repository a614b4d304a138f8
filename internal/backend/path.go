// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

import (
	"fmt"
	"strings"
)

// Separator is the path separator used for backend names.
const Separator = '/'

// ConcatPath joins root and name with a single separator, unless root already
// ends with one or is empty.
//
// It returns [ErrPathTooLong] if the result would be longer than maxLen. The
// length is checked before the result is built. A maxLen of 0 disables the
// check.
func ConcatPath(root, name string, maxLen int) (string, error) {
	needSep := root != "" && root[len(root)-1] != Separator

	length := len(root) + len(name)
	if needSep {
		length++
	}

	if maxLen > 0 && length > maxLen {
		return "", fmt.Errorf("%d > %d: %w", length, maxLen, ErrPathTooLong)
	}

	var builder strings.Builder

	builder.Grow(length)
	builder.WriteString(root)

	if needSep {
		builder.WriteByte(Separator)
	}

	builder.WriteString(name)

	return builder.String(), nil
}

// TrimDirSuffix removes a single trailing separator from name. Directory
// entries in archives conventionally carry one.
func TrimDirSuffix(name string) string {
	if name != "" && name[len(name)-1] == Separator {
		return name[:len(name)-1]
	}

	return name
}
