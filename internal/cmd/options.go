// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/mia-platform/fatallogger/internal/config"
	"github.com/mia-platform/fatallogger/internal/logger"
	"github.com/mia-platform/fatallogger/internal/mod"
)

// options configures a load of the mods.
type options struct {
	manifests []*config.ModManifest
	failSetup []string
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	for _, modID := range o.failSetup {
		if !slices.ContainsFunc(o.manifests, func(manifest *config.ModManifest) bool {
			return manifest.ModID == modID
		}) {
			return fmt.Errorf("%w: %s", errUnknownMod, modID)
		}
	}

	return nil
}

// executeLoad loads the mods with the registry found in ctx.
func (o *options) executeLoad(ctx context.Context) error {
	loader := mod.NewLoader(logger.RegistryFromContext(ctx))
	for _, modID := range o.failSetup {
		loader.OnSetup(modID, func(context.Context) error {
			return errSimulatedFailure
		})
	}

	_, err := loader.Load(ctx, o.manifests)
	return err
}

// channels returns the sorted logger channels used by the mods.
func (o *options) channels() []string {
	channels := make([]string, 0, len(o.manifests))
	for _, manifest := range o.manifests {
		channels = append(channels, manifest.Channel)
	}

	slices.Sort(channels)
	return slices.Compact(channels)
}
