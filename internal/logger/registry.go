// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"slices"
	"sync"
)

// Registry hands out one Logger per named channel. Channel loggers are derived from the
// root logger, so they share its output and its level.
type Registry struct {
	root Logger

	lock     sync.Mutex
	channels map[string]Logger
}

// NewRegistry creates a Registry deriving every channel from root.
func NewRegistry(root Logger) *Registry {
	return &Registry{
		root:     root,
		channels: make(map[string]Logger),
	}
}

// Root returns the logger every channel is derived from.
func (r *Registry) Root() Logger {
	return r.root
}

// Named returns the logger of channel, creating it on first use.
func (r *Registry) Named(channel string) Logger {
	r.lock.Lock()
	defer r.lock.Unlock()

	if log, ok := r.channels[channel]; ok {
		return log
	}

	log := r.root.WithName(channel)
	r.channels[channel] = log
	return log
}

// Channels returns the sorted names of the channels created so far.
func (r *Registry) Channels() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetLevel updates the level of the root logger and of all its channels.
func (r *Registry) SetLevel(level Level) {
	r.root.SetLevel(level)
}
