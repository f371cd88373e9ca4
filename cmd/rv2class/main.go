package main

import (
	"fmt"
	"os"

	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rv2class",
	Short: "Audio-first lesson rooms on top of a LiveKit server",
	Long: `rv2class serves the lesson landing page, the room page and the
token endpoint that lets browsers join LiveKit rooms.

Without a subcommand it starts the HTTP server.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// --env-file= turns dotenv loading off.
		if cmd.Flags().Changed("env-file") && len(flagEnvFiles) == 0 {
			return nil
		}
		return variables.LoadDotenv(flagEnvFiles...)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var flagEnvFiles []string

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&flagEnvFiles, "env-file", []string{".env", ".env.local"}, "dotenv files loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, tokenCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
