// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

// WithContext returns a new context with the provided logger.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext retrieves the logger from the context. If no logger is found, a new null logger is returned.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(Logger); ok {
			return logger
		}
	}

	return nullLogger
}

// RegistryWithContext returns a new context with the provided registry.
func RegistryWithContext(ctx context.Context, registry *Registry) context.Context {
	return context.WithValue(ctx, registryContextKey, registry)
}

// RegistryFromContext retrieves the registry from the context. If none is found, a registry
// built on top of the context logger is returned.
func RegistryFromContext(ctx context.Context) *Registry {
	if ctx != nil {
		if registry, ok := ctx.Value(registryContextKey).(*Registry); ok {
			return registry
		}
	}

	return NewRegistry(FromContext(ctx))
}

// Unexported new type so that our context keys never collide with another.
type contextKeyType struct{}
type registryContextKeyType struct{}

var (
	// contextKey is the key used for the context to store the logger.
	contextKey = contextKeyType{}
	// registryContextKey is the key used for the context to store the channel registry.
	registryContextKey = registryContextKeyType{}
)
