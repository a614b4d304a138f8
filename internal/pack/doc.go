// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pack writes directory trees as archives that can be mounted.
//
// Archives can be written on their own or appended to an executable as a
// bundle with a trailer that locates the archive. See [Bundle].
package pack
