// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package mod bootstraps the mods described by the manifests. Every mod logs on its own
// channel taken from a logger.Registry, and runs its setup work when the lifecycle Bus
// posts the common setup phase.
package mod
