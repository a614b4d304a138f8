// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mountfs provides a read-only virtual file system that overlays
// multiple backing stores.
//
// A backing store is either a plain directory or an archive (tar or cpio). An
// archive may also be appended to another file, typically the executable of
// the host application. Such a bundle ends with an 8 byte trailer that points
// to the start of the archive, so the executable can just mount itself:
//
//	package main
//
//	import (
//	    "os"
//
//	    "github.com/aibor/mountfs"
//	)
//
//	func main() {
//	    vfs := mountfs.New(mountfs.Config{})
//	    defer vfs.Close()
//
//	    self, _ := os.Executable()
//	    if err := vfs.Mount(self); err != nil {
//	        panic(err)
//	    }
//
//	    // Files in ./override shadow the ones in the bundled archive.
//	    _ = vfs.Mount("override")
//
//	    data, err := vfs.ReadFile("data/config.txt")
//	    ...
//	}
//
// Mounts are searched in reverse order: the most recently mounted store is
// asked first, so later mounts shadow earlier ones for identical names. Names
// are used as is. They are neither cleaned nor made relative.
//
// Bundles can be created with the mkbundle command of this module.
package mountfs
