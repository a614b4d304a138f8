// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package archive

import "os"

func openFile(path string) (*os.File, error) {
	return os.Open(path) //nolint:wrapcheck
}
