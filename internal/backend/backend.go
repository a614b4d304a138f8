// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

// Backend is a read-only backing store that can be mounted.
//
// Names are slash separated and relative to the root of the backend. They are
// used as is and not cleaned.
type Backend interface {
	// Exists reports whether an entry of any type with the given name exists.
	Exists(name string) bool

	// IsFile reports whether the given name is a regular file.
	IsFile(name string) bool

	// IsDir reports whether the given name is a directory.
	IsDir(name string) bool

	// ReadFile returns the whole content of the regular file with the given
	// name.
	ReadFile(name string) ([]byte, error)

	// Close releases all resources held by the backend. The backend must not
	// be used afterwards.
	Close() error
}

// FileType is the type of a backend entry as far as it is of interest for
// lookups.
type FileType int

const (
	TypeNone FileType = iota
	TypeRegular
	TypeDirectory
	TypeOther
)

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRegular:
		return "file"
	case TypeDirectory:
		return "dir"
	case TypeOther:
		return "other"
	default:
		return "unknown"
	}
}
