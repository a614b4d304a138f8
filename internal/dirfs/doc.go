// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dirfs provides a read-only backend for a plain directory of the
// host file system.
//
// Entry types are determined by trying to open a name as directory first and
// as regular file second. Stat calls are avoided as they are very slow on
// some platforms.
package dirfs
