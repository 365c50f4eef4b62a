// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

// Package config defines the typed, validated configuration objects consumed
// by the inference pipeline, and the cached accessors that produce them.
//
// Configuration is assembled by the settings resolver from direct
// initialization arguments and JSON config files (init arguments win), then
// decoded into an immutable record and checked for required fields.
//
// The main entry points are [ModelConfigFor] and [InferenceConfigFor], which
// cache the constructed objects per config file path in a bounded
// least-recently-used cache.
package config
