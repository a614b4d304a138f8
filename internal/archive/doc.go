// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive provides a read-only backend for tar and cpio archives.
//
// On mount, all header records of the archive are scanned once and an index
// of name hash to header position is built. Lookups hash the requested name,
// re-read the headers of all matching index entries and compare the stored
// names, so hash collisions are resolved without keeping names in memory.
//
// Archives may be appended to another file, like an executable. In that case
// the last 8 bytes of the file must be a trailer consisting of the magic
// "TAR\x00" and the little endian uint32 distance from the end of the file to
// the start of the archive. See [AppendTrailer].
package archive
