// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

const hashSeed uint32 = 5381

// Hash returns the djb2 xor variant hash of s.
//
// It is used as index key only. Collisions are expected.
func Hash(s string) uint32 {
	hash := hashSeed
	for i := range len(s) {
		hash = ((hash << 5) + hash) ^ uint32(s[i])
	}

	return hash
}
