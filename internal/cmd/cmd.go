// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	loadCmdUsage = "load"
	loadCmdShort = "load the mods and run their setup"
	loadCmdLong  = `Load the mods and run their setup.
	Every mod writes on its own logger channel: it announces itself when it is
	constructed and again when its common setup completes. A failing setup is
	reported at the FATAL level on the mod channel.

	When no manifest is provided the built-in mods are loaded:
	- FatalLogger
	- neocortex`

	loadCmdExample = `# Load the built-in mods
	fatallogger load

	# Load the mods described in a directory of manifests, showing debug lines
	fatallogger load -v DEBUG -f mods/

	# Check how a failing setup is reported
	fatallogger load --fail-setup neocortex`

	channelsCmdUsage = "channels"
	channelsCmdShort = "list the logger channels used by the mods"
	channelsCmdLong  = `List the logger channels used by the mods, one per line.
	Manifests are read the same way as the load command.`

	channelsCmdExample = `# List the channels of the built-in mods
	fatallogger channels`
)

// LoadCmd returns the Cobra command that loads the mods.
func LoadCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     loadCmdUsage,
		Short:   heredoc.Doc(loadCmdShort),
		Long:    heredoc.Doc(loadCmdLong),
		Example: heredoc.Doc(loadCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions()
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.executeLoad(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	flags.addLoadFlags(cmd)
	return cmd
}

// ChannelsCmd returns the Cobra command that lists the mods logger channels.
func ChannelsCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     channelsCmdUsage,
		Short:   heredoc.Doc(channelsCmdShort),
		Long:    heredoc.Doc(channelsCmdLong),
		Example: heredoc.Doc(channelsCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions()
			if err != nil {
				return handleError(cmd, err)
			}

			for _, channel := range opts.channels() {
				fmt.Fprintln(cmd.OutOrStdout(), channel)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
