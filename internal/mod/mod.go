// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mod

import (
	"context"
	"errors"
	"fmt"

	"github.com/mia-platform/fatallogger/internal/config"
	"github.com/mia-platform/fatallogger/internal/logger"
)

var (
	ErrSetup = errors.New("mod setup failed")
)

// SetupFunc is extra work run during the common setup of a mod.
type SetupFunc func(ctx context.Context) error

// Mod is a loaded mod bound to its logger channel.
type Mod struct {
	ID           string
	Channel      string
	SetupMessage string

	log   logger.Logger
	setup SetupFunc
}

// New builds the mod described by manifest, announces it on its channel and registers its
// common setup on bus.
func New(manifest *config.ModManifest, registry *logger.Registry, bus *Bus, setup SetupFunc) *Mod {
	m := &Mod{
		ID:           manifest.ModID,
		Channel:      manifest.Channel,
		SetupMessage: manifest.SetupMessage,
		log:          registry.Named(manifest.Channel),
		setup:        setup,
	}

	if manifest.InitMessage != "" {
		m.log.Info(manifest.InitMessage)
	}

	bus.AddListener(PhaseCommonSetup, m.commonSetup)
	return m
}

// Logger returns the logger of the mod channel.
func (m *Mod) Logger() logger.Logger {
	return m.log
}

func (m *Mod) commonSetup(ctx context.Context) error {
	if m.setup != nil {
		if err := m.setup(ctx); err != nil {
			m.log.FatalCause("setup failed", err, "modId", m.ID)
			return fmt.Errorf("%w %q: %w", ErrSetup, m.ID, err)
		}
	}

	if m.SetupMessage != "" {
		m.log.Info(m.SetupMessage)
	}
	return nil
}
