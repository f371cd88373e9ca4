package main

import (
	"fmt"
	"time"

	"github.com/romashorodok/rv2class/internal/grant"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/spf13/cobra"
)

var flagTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <room> <identity> [name]",
	Short: "Issue a room access token",
	Long: `Issue a LiveKit access token for a room using the API credentials
from the environment.

Examples:
  rv2class token math-lesson-1 Alice
  rv2class token math-lesson-1 teacher-1 "Ms Smith" --ttl 2h`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := variables.EnvLiveKitSource{}.LiveKit()
		if err != nil {
			return err
		}
		if flagTTL > 0 {
			cfg.TokenTTL = flagTTL
		}

		var name string
		if len(args) == 3 {
			name = args[2]
		}

		token, err := grant.NewTokenService().IssueFor(cfg, args[0], args[1], name)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&flagTTL, "ttl", 0, "token lifetime, defaults to LIVEKIT_TOKEN_TTL")
}
