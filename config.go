// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mountfs

import "log/slog"

const (
	// DefaultMaxMounts is the default for [Config.MaxMounts].
	DefaultMaxMounts = 8

	// DefaultMaxPathLen is the default for [Config.MaxPathLen].
	DefaultMaxPathLen = 256
)

// Config is the configuration for a [VFS]. Zero values are replaced by
// defaults.
type Config struct {
	// MaxMounts is the maximum number of simultaneous mounts.
	MaxMounts int

	// MaxPathLen is the maximum length of mount paths and of paths built
	// by directory backends.
	MaxPathLen int

	// Openers are tried in order for each mount until one succeeds.
	// Defaults to [DefaultOpeners].
	Openers []Opener

	// Logger receives debug messages about mount operations. Defaults to
	// [slog.Default].
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxMounts <= 0 {
		c.MaxMounts = DefaultMaxMounts
	}

	if c.MaxPathLen <= 0 {
		c.MaxPathLen = DefaultMaxPathLen
	}

	if len(c.Openers) == 0 {
		c.Openers = DefaultOpeners()
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	return c
}
