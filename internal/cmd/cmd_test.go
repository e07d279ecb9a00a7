// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/fatallogger/internal/logger"
	"github.com/mia-platform/fatallogger/internal/mod"
)

func TestCmds(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cmd                  *cobra.Command
		args                 []string
		expectedError        error
		expectedErrorMessage string
		expectedOutput       string
	}{
		"load command with built-in mods": {
			cmd:  LoadCmd(),
			args: []string{},
		},
		"load command with manifest file": {
			cmd:  LoadCmd(),
			args: []string{"--" + manifestPathFlagName, filepath.Join("testdata", "mods.yaml")},
		},
		"load command missing path, return error no usage": {
			cmd:                  LoadCmd(),
			args:                 []string{"--" + manifestPathFlagName, filepath.Join("testdata", "missing")},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("manifest file %q: %s\n", filepath.Join("testdata", "missing"), syscall.ENOENT),
		},
		"load command with only disabled mods": {
			cmd:                  LoadCmd(),
			args:                 []string{"-" + manifestPathFlagShort, filepath.Join("testdata", "disabled.yaml")},
			expectedError:        errNoManifests,
			expectedErrorMessage: "no mod manifest found in " + filepath.Join("testdata", "disabled.yaml") + "\n",
		},
		"load command failing unknown mod, return error and usage": {
			cmd:                  LoadCmd(),
			args:                 []string{"--" + failSetupFlagName, "examplemod"},
			expectedError:        errUnknownMod,
			expectedErrorMessage: "unknown mod id: examplemod\n",
			expectedOutput:       "usage string",
		},
		"load command with failing setup": {
			cmd:                  LoadCmd(),
			args:                 []string{"--" + failSetupFlagName, "neocortex"},
			expectedError:        mod.ErrSetup,
			expectedErrorMessage: `mod setup failed "neocortex": simulated setup failure` + "\n",
		},
		"channels command with built-in mods": {
			cmd:            ChannelsCmd(),
			args:           []string{},
			expectedOutput: "FatalLogger\nneocortex\n",
		},
		"channels command with manifest file": {
			cmd:            ChannelsCmd(),
			args:           []string{"--" + manifestPathFlagName, filepath.Join("testdata", "mods.yaml")},
			expectedOutput: "FatalLogger\nneocortex\n",
		},
		"channels command missing path": {
			cmd:                  ChannelsCmd(),
			args:                 []string{"--" + manifestPathFlagName, filepath.Join("testdata", "missing")},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("manifest file %q: %s\n", filepath.Join("testdata", "missing"), syscall.ENOENT),
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			errBuffer := new(bytes.Buffer)
			outBuffer := new(bytes.Buffer)
			test.cmd.SetOut(outBuffer)
			test.cmd.SetErr(errBuffer)
			test.cmd.SetUsageTemplate("usage string")
			test.cmd.SetArgs(test.args)

			err := test.cmd.ExecuteContext(t.Context())
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Equal(t, test.expectedErrorMessage, errBuffer.String())
			} else {
				assert.NoError(t, err)
				assert.Empty(t, errBuffer)
			}

			assert.Equal(t, test.expectedOutput, outBuffer.String())
		})
	}
}

func TestLoadCmdLogsOnChannels(t *testing.T) {
	t.Parallel()

	logBuffer := new(bytes.Buffer)
	registry := logger.NewRegistry(logger.NewLogger(logBuffer))
	ctx := logger.RegistryWithContext(t.Context(), registry)

	cmd := LoadCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--" + failSetupFlagName, "FatalLogger"})

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, errSimulatedFailure)

	lines := strings.Split(strings.TrimSpace(logBuffer.String()), "\n")
	require.Len(t, lines, 3) // two init lines and the fatal line
	assert.Contains(t, lines[2], `"@message":"[FATAL] setup failed"`)
	assert.Contains(t, lines[2], `"@module":"FatalLogger"`)
	assert.Contains(t, lines[2], `"error":"simulated setup failure"`)
}
