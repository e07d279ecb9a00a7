// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mia-platform/fatallogger/internal/config"
	"github.com/mia-platform/fatallogger/internal/logger"
)

const (
	loaderChannel = "fatallogger:loader"
)

var (
	ErrDuplicateMod = errors.New("duplicate mod id")
)

// Loader builds mods from manifests and drives them through the lifecycle phases.
type Loader struct {
	registry   *logger.Registry
	setupHooks map[string]SetupFunc
}

// NewLoader returns a Loader taking channel loggers from registry.
func NewLoader(registry *logger.Registry) *Loader {
	return &Loader{
		registry:   registry,
		setupHooks: make(map[string]SetupFunc),
	}
}

// OnSetup adds fn to the common setup of the mod with id modID.
func (l *Loader) OnSetup(modID string, fn SetupFunc) {
	l.setupHooks[modID] = fn
}

// Load builds a mod for every manifest and runs the lifecycle. The first setup failure
// stops the load and is returned.
func (l *Loader) Load(ctx context.Context, manifests []*config.ModManifest) ([]*Mod, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("error generating run id: %w", err)
	}

	log := l.registry.Named(loaderChannel).With("run", runID.String())
	log.Debug("loading mods", "count", len(manifests))

	seen := make(map[string]struct{}, len(manifests))
	for _, manifest := range manifests {
		if _, ok := seen[manifest.ModID]; ok {
			log.Error("mod declared more than once", "modId", manifest.ModID)
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMod, manifest.ModID)
		}
		seen[manifest.ModID] = struct{}{}
	}

	bus := NewBus(log)
	mods := make([]*Mod, 0, len(manifests))
	ids := make([]string, 0, len(manifests))
	for _, manifest := range manifests {
		mods = append(mods, New(manifest, l.registry, bus, l.setupHooks[manifest.ModID]))
		ids = append(ids, manifest.ModID)
	}

	bus.AddListener(PhaseLoadComplete, func(context.Context) error {
		log.Info("mods loaded", "mods", ids)
		return nil
	})

	for _, phase := range []Phase{PhaseCommonSetup, PhaseLoadComplete} {
		if err := bus.Post(ctx, phase); err != nil {
			return nil, err
		}
	}

	return mods, nil
}
