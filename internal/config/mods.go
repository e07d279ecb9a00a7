// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ModIDField = "modId"
)

var (
	// ErrParsing reports failures that occur while decoding manifest files.
	ErrParsing = errors.New("error parsing")
)

// ModManifest describes a mod and the logger channel it writes to.
type ModManifest struct {
	ModID        string `json:"modId" yaml:"modId"`
	Channel      string `json:"channel,omitempty" yaml:"channel,omitempty"`
	InitMessage  string `json:"initMessage,omitempty" yaml:"initMessage,omitempty"`
	SetupMessage string `json:"setupMessage,omitempty" yaml:"setupMessage,omitempty"`
	Disabled     bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// DefaultModManifests returns the manifests of the mods shipped with the application.
func DefaultModManifests() []*ModManifest {
	return []*ModManifest{
		{
			ModID:        "FatalLogger",
			Channel:      "FatalLogger",
			InitMessage:  "Fatal Logger initialized.",
			SetupMessage: "Fatal Logger setup complete!",
		},
		{
			ModID:        "neocortex",
			Channel:      "neocortex",
			InitMessage:  "Fatal Logger initialized.",
			SetupMessage: "Fatal Logger setup complete!",
		},
	}
}

// NewModManifestsFromPath parses the file at path and returns the enabled mod manifests
// it contains. A file can hold multiple YAML documents.
func NewModManifestsFromPath(path string) ([]*ModManifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodeModManifests(path, file)
}

func decodeModManifests(path string, reader io.Reader) ([]*ModManifest, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	manifests := make([]*ModManifest, 0)
	for {
		manifest := new(ModManifest)
		err := decoder.Decode(&manifest)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		// empty documents decode to a nil manifest
		if manifest == nil {
			continue
		}

		manifest.ModID = strings.TrimSpace(manifest.ModID)
		if manifest.ModID == "" {
			return nil, fmt.Errorf("%w %q: missing required fields: %s", ErrParsing, path, ModIDField)
		}

		if manifest.Disabled {
			continue
		}

		if manifest.Channel == "" {
			manifest.Channel = manifest.ModID
		}

		manifests = append(manifests, manifest)
	}

	return manifests, nil
}
