// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/fatallogger/internal/config"
)

var (
	errUnknownMod       = errors.New("unknown mod id")
	errNoManifests      = errors.New("no mod manifest found")
	errSimulatedFailure = errors.New("simulated setup failure")
)

// handleError will do custom print error handling based on the type of error received.
// It always returns the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errUnknownMod):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// unwrappedError returns the unwrapped error if available, otherwise it returns the original error.
func unwrappedError(err error) error {
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		return unwrapped
	}

	return err
}

// modIDCompletion completes the ids of the built-in mods.
func modIDCompletion(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	for _, manifest := range config.DefaultModManifests() {
		if strings.HasPrefix(manifest.ModID, toComplete) {
			comps = append(comps, cobra.CompletionWithDesc(manifest.ModID, "logs on channel "+manifest.Channel))
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}

func collectPaths(paths []string) ([]string, error) {
	collected := make([]string, 0)
	for _, p := range paths {
		cleanedPath := filepath.Clean(p)
		err := filepath.Walk(cleanedPath, func(walkedPath string, info fs.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("manifest file %q: %w", walkedPath, unwrappedError(err))
			}

			switch {
			case !info.IsDir(): // it's a file add to the collection
				collected = append(collected, walkedPath)
			case info.IsDir() && cleanedPath != walkedPath: // skip directories if is not the root path
				return filepath.SkipDir
			}

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return collected, nil
}

// loadManifests reads the mod manifests from paths. Without paths the built-in manifests
// are returned.
func loadManifests(paths []string) ([]*config.ModManifest, error) {
	if len(paths) == 0 {
		return config.DefaultModManifests(), nil
	}

	manifests := make([]*config.ModManifest, 0)
	for _, path := range paths {
		fileManifests, err := config.NewModManifestsFromPath(path)
		if err != nil {
			return nil, err
		}

		manifests = append(manifests, fileManifests...)
	}

	if len(manifests) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoManifests, strings.Join(paths, ", "))
	}

	return manifests, nil
}
