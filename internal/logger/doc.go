// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps the underlying logging stack behind a consistent interface.
// The stack only knows levels up to ERROR: FATAL is layered on top by the Extended facade,
// which forwards FATAL messages to ERROR with a "[FATAL] " marker.
// Loggers are handed out per channel by a Registry and made available through context helpers.
package logger
