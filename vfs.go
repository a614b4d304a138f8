// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mountfs

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

type mount struct {
	path    string
	kind    string
	backend Backend
}

// VFS is a stack of mounted [Backend]s.
//
// Lookups search the mounts from the most recently mounted to the first one.
// All methods are safe for concurrent use. Create a new instance with [New]
// and release it with [VFS.Close].
type VFS struct {
	mu     sync.Mutex
	cfg    Config
	mounts []mount
}

// New creates a new [VFS] without any mounts.
func New(cfg Config) *VFS {
	cfg = cfg.withDefaults()

	return &VFS{
		cfg:    cfg,
		mounts: make([]mount, 0, cfg.MaxMounts),
	}
}

// Mount adds the archive or directory at path as new top most mount.
//
// The path is compared to the paths of existing mounts as is. The
// [Config.Openers] are tried in order and the first [Backend] created
// successfully is used. It returns a [PathError] wrapping
// [ErrPathTooLong], [ErrAlreadyMounted], [ErrCapacityExceeded] or
// [ErrUnsupportedSource].
func (v *VFS) Mount(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.checkMountable(path)
	if err != nil {
		return &PathError{
			Op:   "mount",
			Path: path,
			Err:  err,
		}
	}

	errs := []error{ErrUnsupportedSource}

	for _, opener := range v.cfg.Openers {
		backend, err := opener.Open(path, v.cfg.MaxPathLen)
		if err != nil {
			v.cfg.Logger.Debug("Backend not applicable",
				slog.String("path", path),
				slog.String("kind", opener.Kind),
				slog.Any("error", err),
			)

			errs = append(errs, fmt.Errorf("%s: %w", opener.Kind, err))

			continue
		}

		v.mounts = append(v.mounts, mount{
			path:    path,
			kind:    opener.Kind,
			backend: backend,
		})

		v.cfg.Logger.Debug("Mounted",
			slog.String("path", path),
			slog.String("kind", opener.Kind),
			slog.Int("mounts", len(v.mounts)),
		)

		return nil
	}

	return &PathError{
		Op:   "mount",
		Path: path,
		Err:  errors.Join(errs...),
	}
}

func (v *VFS) checkMountable(path string) error {
	if len(path) > v.cfg.MaxPathLen {
		return fmt.Errorf("%d > %d: %w", len(path), v.cfg.MaxPathLen, ErrPathTooLong)
	}

	if v.indexOf(path) >= 0 {
		return ErrAlreadyMounted
	}

	if len(v.mounts) >= v.cfg.MaxMounts {
		return ErrCapacityExceeded
	}

	return nil
}

// Unmount closes and removes the mount with the given path.
//
// The order of the remaining mounts is not changed. It returns a [PathError]
// wrapping [ErrNotMounted] if no mount with the path exists. If the backend
// fails to close, the error is returned but the mount is removed anyway.
func (v *VFS) Unmount(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	idx := v.indexOf(path)
	if idx < 0 {
		return &PathError{
			Op:   "unmount",
			Path: path,
			Err:  ErrNotMounted,
		}
	}

	mnt := v.mounts[idx]
	v.mounts = slices.Delete(v.mounts, idx, idx+1)

	err := v.close(mnt)
	if err != nil {
		return &PathError{
			Op:   "unmount",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

func (v *VFS) close(mnt mount) error {
	err := mnt.backend.Close()
	if err != nil {
		v.cfg.Logger.Warn("Failed to close backend",
			slog.String("path", mnt.path),
			slog.String("kind", mnt.kind),
			slog.Any("error", err),
		)

		return err //nolint:wrapcheck
	}

	v.cfg.Logger.Debug("Unmounted",
		slog.String("path", mnt.path),
		slog.String("kind", mnt.kind),
	)

	return nil
}

// Close unmounts all mounts, the most recent first. Errors are collected and
// returned joined. The [VFS] is empty afterwards and may be used again.
func (v *VFS) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	var errs []error

	for _, mnt := range slices.Backward(v.mounts) {
		err := v.close(mnt)
		if err != nil {
			errs = append(errs, fmt.Errorf("unmount %s: %w", mnt.path, err))
		}
	}

	clear(v.mounts)
	v.mounts = v.mounts[:0]

	return errors.Join(errs...)
}

// Mounts returns the paths of all mounts in search order, most recent first.
func (v *VFS) Mounts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	paths := make([]string, 0, len(v.mounts))
	for _, mnt := range slices.Backward(v.mounts) {
		paths = append(paths, mnt.path)
	}

	return paths
}

// Exists reports whether name exists in any mount.
func (v *VFS) Exists(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, found := v.lookup(name)

	return found
}

// IsFile reports whether name is a regular file in the most recent mount it
// exists in.
func (v *VFS) IsFile(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	backend, found := v.lookup(name)

	return found && backend.IsFile(name)
}

// IsDir reports whether name is a directory in the most recent mount it
// exists in.
func (v *VFS) IsDir(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	backend, found := v.lookup(name)

	return found && backend.IsDir(name)
}

// ReadFile returns the content of the regular file name from the most recent
// mount that has a regular file with that name.
//
// It returns a [PathError] wrapping [ErrNotFound] if there is no such mount.
// Errors of the backend are returned as they are.
func (v *VFS) ReadFile(name string) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, mnt := range slices.Backward(v.mounts) {
		if !mnt.backend.Exists(name) || !mnt.backend.IsFile(name) {
			continue
		}

		data, err := mnt.backend.ReadFile(name)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return data, nil
	}

	return nil, &PathError{
		Op:   "read",
		Path: name,
		Err:  ErrNotFound,
	}
}

// lookup returns the backend of the most recent mount name exists in.
func (v *VFS) lookup(name string) (Backend, bool) {
	for _, mnt := range slices.Backward(v.mounts) {
		if mnt.backend.Exists(name) {
			return mnt.backend, true
		}
	}

	return nil, false
}

func (v *VFS) indexOf(path string) int {
	return slices.IndexFunc(v.mounts, func(mnt mount) bool {
		return mnt.path == path
	})
}
