// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package mountfs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/mountfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestVFS_Mount_FIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifo")
	require.NoError(t, unix.Mkfifo(path, 0o600))

	vfs := newVFS(t, mountfs.Config{})
	done := make(chan error, 1)

	go func() {
		done <- vfs.Mount(path)
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, mountfs.ErrUnsupportedSource)
	case <-time.After(2 * time.Second):
		t.Fatal("mount blocked")
	}

	assert.Empty(t, vfs.Mounts())
}

func TestVFS_ReadFile_FIFOInDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, unix.Mkfifo(filepath.Join(dir, "fifo"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("data"), 0o600))

	vfs := newVFS(t, mountfs.Config{})
	require.NoError(t, vfs.Mount(dir))

	done := make(chan error, 1)

	go func() {
		_, err := vfs.ReadFile("fifo")
		done <- err
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, mountfs.ErrUnsupportedSource)
	case <-time.After(2 * time.Second):
		t.Fatal("read blocked")
	}

	data, err := vfs.ReadFile("file")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}
