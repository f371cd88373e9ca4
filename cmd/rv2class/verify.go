package main

import (
	"encoding/json"

	"github.com/romashorodok/rv2class/internal/grant"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/spf13/cobra"
)

var flagSecret string

var verifyCmd = &cobra.Command{
	Use:   "verify <token>",
	Short: "Verify an access token and print its grant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := flagSecret
		if secret == "" {
			var err error
			if secret, err = variables.LoadLiveKitSecret(); err != nil {
				return err
			}
		}

		claims, err := grant.NewTokenService().Inspect(args[0], secret)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&flagSecret, "secret", "", "signing secret, defaults to LIVEKIT_API_SECRET")
}
