// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive_test

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/mountfs/internal/archive"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name string
	data string
	dir  bool
}

var testEntries = []entry{
	{name: "dir/", dir: true},
	{name: "dir/file.txt", data: "file content"},
	{name: "dir/sub/", dir: true},
	{name: "dir/sub/empty"},
	{name: "top", data: "top level\n"},
	{name: "bC", data: "collision one"},
	{name: "cb", data: "collision two"},
}

func tarArchive(tb testing.TB, entries []entry) []byte {
	tb.Helper()

	var buf bytes.Buffer

	writer := tar.NewWriter(&buf)

	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     0o644,
			Typeflag: tar.TypeReg,
			Size:     int64(len(e.data)),
		}

		if e.dir {
			hdr.Mode = 0o755
			hdr.Typeflag = tar.TypeDir
		}

		require.NoError(tb, writer.WriteHeader(hdr))

		_, err := writer.Write([]byte(e.data))
		require.NoError(tb, err)
	}

	require.NoError(tb, writer.Close())

	return buf.Bytes()
}

func cpioArchive(tb testing.TB, entries []entry) []byte {
	tb.Helper()

	var buf bytes.Buffer

	writer := cpio.NewWriter(&buf)

	for _, e := range entries {
		hdr := &cpio.Header{
			Name: e.name,
			Mode: cpio.TypeReg | 0o644,
			Size: int64(len(e.data)),
		}

		if e.dir {
			hdr.Name = e.name[:len(e.name)-1]
			hdr.Mode = cpio.TypeDir | cpio.ModePerm
			hdr.Links = 2
		}

		require.NoError(tb, writer.WriteHeader(hdr))

		_, err := writer.Write([]byte(e.data))
		require.NoError(tb, err)
	}

	require.NoError(tb, writer.Close())

	return buf.Bytes()
}

// bundle appends the archive and its trailer to prefix.
func bundle(tb testing.TB, prefix, archiveData []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer

	buf.Write(prefix)
	buf.Write(archiveData)
	require.NoError(tb, archive.AppendTrailer(&buf, int64(len(archiveData))))

	return buf.Bytes()
}

func writeFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	require.NoError(tb, os.WriteFile(path, data, 0o600))

	return path
}
