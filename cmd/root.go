// Package cmd implements the drivedocs CLI.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// verboseLogKey is the environment variable used to enable verbose
// logging. When it's set to `true`, Debug events are logged, rather than
// just Info and above.
const verboseLogKey = "DRIVEDOCS_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "drivedocs",
		Short:        "Keep a shared documentation of external drives and their projects",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence
		// errors here to avoid double printing.
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newSyncCommand(),
		newScanCommand(),
		newBlacklistCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
