// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

// Package settings implements the layered settings resolver used to assemble
// configuration objects for the inference pipeline.
//
// A configuration value is assembled from an explicit ordered list of
// sources, highest priority first (earlier sources win on key collision):
//  1. Direct initialization arguments
//  2. JSON config file(s)
//
// Environment-variable and secrets-file sources are also available for
// callers composing their own [Resolver], but are not part of the default
// chain for the pipeline config types.
//
// The main entry point is [Resolver.Resolve], which loads every source and
// deep-merges the partial mappings into a single map of raw values.
package settings
