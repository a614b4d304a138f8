// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "iter"

const initialIndexCap = 16

// IndexEntry maps a name hash to the position of the header record in the
// archive stream.
type IndexEntry struct {
	Hash     uint32
	Position int64
}

// Index is an append only list of [IndexEntry]s in archive order.
//
// Multiple entries may have the same hash.
type Index struct {
	entries []IndexEntry
}

// Add appends a new entry.
func (i *Index) Add(hash uint32, position int64) {
	if i.entries == nil {
		i.entries = make([]IndexEntry, 0, initialIndexCap)
	}

	i.entries = append(i.entries, IndexEntry{
		Hash:     hash,
		Position: position,
	})
}

// Len returns the number of entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns a copy of all entries in archive order.
func (i *Index) Entries() []IndexEntry {
	return append([]IndexEntry(nil), i.entries...)
}

// Lookup returns the positions of all entries with the given hash in archive
// order.
func (i *Index) Lookup(hash uint32) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, entry := range i.entries {
			if entry.Hash != hash {
				continue
			}

			if !yield(entry.Position) {
				return
			}
		}
	}
}
