// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack_test

import (
	"bytes"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/aibor/mountfs/internal/archive"
	"github.com/aibor/mountfs/internal/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludes_Set(t *testing.T) {
	var excludes pack.Excludes

	require.NoError(t, excludes.Set("**/*.tmp"))
	require.NoError(t, excludes.Set(".git"))
	require.ErrorIs(t, excludes.Set("[a-"), pack.ErrInvalidPattern)

	assert.Equal(t, pack.Excludes{"**/*.tmp", ".git"}, excludes)
	assert.Equal(t, "**/*.tmp,.git", excludes.String())
}

func TestExcludes_Match(t *testing.T) {
	excludes := pack.Excludes{"**/*.tmp", ".git", "cache/*"}

	tests := []struct {
		name     string
		expected bool
	}{
		{name: "a.tmp", expected: true},
		{name: "dir/sub/b.tmp", expected: true},
		{name: ".git", expected: true},
		{name: "cache/x", expected: true},
		{name: "cache", expected: false},
		{name: "cache/x/y", expected: false},
		{name: "tmp", expected: false},
		{name: "dir/.gitignore", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, excludes.Match(tt.name))
		})
	}
}

func TestExclude(t *testing.T) {
	fsys := fstest.MapFS{
		"keep":         &fstest.MapFile{Data: []byte("keep")},
		"drop.tmp":     &fstest.MapFile{},
		"dir/keep":     &fstest.MapFile{},
		"dir/drop.tmp": &fstest.MapFile{},
		".git/config":  &fstest.MapFile{},
	}

	t.Run("no patterns", func(t *testing.T) {
		assert.Equal(t, fs.FS(fsys), pack.Exclude(fsys, nil))
	})

	excluded := pack.Exclude(fsys, pack.Excludes{"**/*.tmp", ".git"})

	t.Run("open", func(t *testing.T) {
		_, err := excluded.Open("drop.tmp")
		require.ErrorIs(t, err, fs.ErrNotExist)

		_, err = excluded.Open(".git/config")
		require.ErrorIs(t, err, fs.ErrNotExist, "excluded with parent")

		file, err := excluded.Open("keep")
		require.NoError(t, err)
		require.NoError(t, file.Close())
	})

	t.Run("read dir", func(t *testing.T) {
		entries, err := fs.ReadDir(excluded, ".")
		require.NoError(t, err)

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}

		assert.Equal(t, []string{"dir", "keep"}, names)
	})

	t.Run("write", func(t *testing.T) {
		var buf bytes.Buffer

		err := pack.Write(t.Context(), &buf, excluded, pack.FormatTar)
		require.NoError(t, err)

		archiveFS, err := archive.New(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.NoError(t, err)

		assert.Equal(t, 3, archiveFS.Len())
		assert.True(t, archiveFS.IsFile("dir/keep"))
		assert.False(t, archiveFS.Exists("dir/drop.tmp"))
		assert.False(t, archiveFS.Exists(".git"))
	})
}

func TestWithout(t *testing.T) {
	fsys := fstest.MapFS{
		"keep":         &fstest.MapFile{},
		"out[1].tar":   &fstest.MapFile{},
		"dir/out":      &fstest.MapFile{},
		"dir/keep":     &fstest.MapFile{},
		"skip/content": &fstest.MapFile{},
	}

	t.Run("no names", func(t *testing.T) {
		assert.Equal(t, fs.FS(fsys), pack.Without(fsys))
	})

	without := pack.Without(fsys, "out[1].tar", "dir/out", "skip")

	_, err := without.Open("out[1].tar")
	require.ErrorIs(t, err, fs.ErrNotExist, "literal name")

	_, err = without.Open("skip/content")
	require.ErrorIs(t, err, fs.ErrNotExist, "excluded with parent")

	entries, err := fs.ReadDir(without, "dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].Name())
}
