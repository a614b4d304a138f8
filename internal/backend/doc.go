// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package backend defines the interface shared by all mountable backing
// stores along with the errors and path helpers they have in common.
package backend
