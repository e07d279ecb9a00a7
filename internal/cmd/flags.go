// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	manifestPathFlagName  = "manifest"
	manifestPathFlagShort = "f"
	manifestPathFlagUsage = "Path to a file or directory containing mod manifests. Can be specified multiple times."

	failSetupFlagName  = "fail-setup"
	failSetupFlagUsage = "Make the setup of the mod with this id fail. Can be specified multiple times."
)

// flags collects the CLI options shared by the load and channels commands.
type flags struct {
	manifestPaths []string
	failSetup     []string
}

// addFlags registers the CLI flags shared by every command on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(
		&f.manifestPaths,
		manifestPathFlagName,
		manifestPathFlagShort,
		nil,
		manifestPathFlagUsage)
}

// addLoadFlags registers the CLI flags of the load command on cmd.
func (f *flags) addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.failSetup, failSetupFlagName, nil, failSetupFlagUsage)
	_ = cmd.RegisterFlagCompletionFunc(failSetupFlagName, modIDCompletion)
}

// toOptions builds an options instance from the parsed flags.
func (f *flags) toOptions() (*options, error) {
	manifestPaths, err := collectPaths(f.manifestPaths)
	if err != nil {
		return nil, err
	}

	manifests, err := loadManifests(manifestPaths)
	if err != nil {
		return nil, err
	}

	return &options{
		manifests: manifests,
		failSetup: f.failSetup,
	}, nil
}
