// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/mia-platform/fatallogger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.NewLogger(cmd.OutOrStderr())
	ctx := logger.WithContext(t.Context(), log)

	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)

	log.Info("ignored line for set log level")
	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, versionString(Version, "", runtime.Version())+"\n", buffer.String())
}

func TestRootCommandLoad(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args          []string
		expectedLines int
		expectError   bool
	}{
		"load keeps the configured level without flag": {
			args:          []string{"load"},
			expectedLines: 5,
		},
		"load with error level only shows nothing": {
			args: []string{"-v", "ERROR", "load"},
		},
		"load with fatal level still shows fatal lines": {
			args:          []string{"-v", "FATAL", "load", "--fail-setup", "neocortex"},
			expectedLines: 1,
			expectError:   true,
		},
		"load with debug level shows loader lines": {
			args:          []string{"--log-level", "debug", "load"},
			expectedLines: 6,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			cmd := rootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))

			logBuffer := new(bytes.Buffer)
			log := logger.NewLogger(logBuffer)
			ctx := logger.RegistryWithContext(logger.WithContext(t.Context(), log), logger.NewRegistry(log))

			cmd.SetArgs(test.args)
			err := cmd.ExecuteContext(ctx)
			if test.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			output := strings.TrimSpace(logBuffer.String())
			if test.expectedLines == 0 {
				assert.Empty(t, output)
				return
			}
			assert.Len(t, strings.Split(output, "\n"), test.expectedLines)
		})
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0.0, Go Version: go1.25", versionString("1.0.0", "", "go1.25"))
	assert.Equal(t, "1.0.0 (2023-10-27), Go Version: go1.25", versionString("1.0.0", "2023-10-27", "go1.25"))
}
