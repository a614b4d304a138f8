// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Excludes is a list of doublestar patterns, like "**/*.tmp", matched against
// slash separated paths relative to the root of a file system.
//
// It implements [flag.Value]. Each call to Set adds a pattern.
type Excludes []string

func (e *Excludes) String() string {
	return strings.Join(*e, ",")
}

// Set adds the pattern, if valid.
func (e *Excludes) Set(s string) error {
	if !doublestar.ValidatePattern(s) {
		return fmt.Errorf("%w: %s", ErrInvalidPattern, s)
	}

	*e = append(*e, s)

	return nil
}

// Match reports whether name matches any of the patterns.
func (e Excludes) Match(name string) bool {
	for _, pattern := range e {
		// Invalid patterns never match.
		if match, _ := doublestar.Match(pattern, name); match {
			return true
		}
	}

	return false
}

// Exclude returns fsys without the files and directories matching any of the
// patterns. Excluded directories are excluded with all their content.
func Exclude(fsys fs.FS, patterns Excludes) fs.FS {
	if len(patterns) == 0 {
		return fsys
	}

	return &excludeFS{
		fsys:  fsys,
		match: patterns.Match,
	}
}

// Without returns fsys without the given slash separated names. Names are
// compared literally. Excluded directories are excluded with all their
// content.
func Without(fsys fs.FS, names ...string) fs.FS {
	if len(names) == 0 {
		return fsys
	}

	return &excludeFS{
		fsys: fsys,
		match: func(name string) bool {
			return slices.Contains(names, name)
		},
	}
}

var _ fs.ReadDirFS = (*excludeFS)(nil)

type excludeFS struct {
	fsys  fs.FS
	match func(name string) bool
}

func (e *excludeFS) excluded(name string) bool {
	if name == "." {
		return false
	}

	for dir := name; dir != "."; dir = path.Dir(dir) {
		if e.match(dir) {
			return true
		}
	}

	return false
}

func (e *excludeFS) Open(name string) (fs.File, error) {
	if e.excluded(name) {
		return nil, &fs.PathError{
			Op:   "open",
			Path: name,
			Err:  fs.ErrNotExist,
		}
	}

	return e.fsys.Open(name) //nolint:wrapcheck
}

func (e *excludeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if e.excluded(name) {
		return nil, &fs.PathError{
			Op:   "readdir",
			Path: name,
			Err:  fs.ErrNotExist,
		}
	}

	entries, err := fs.ReadDir(e.fsys, name)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	filtered := entries[:0]

	for _, entry := range entries {
		if !e.match(path.Join(name, entry.Name())) {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}
