package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the lm version, overridden at build time via
// -ldflags "-X github.com/libman-dev/libman/internal/cmd.Version=...".
var Version = "dev"

// Commit is the VCS revision lm was built from, if known.
var Commit = ""

var versionCmd = &cobra.Command{
	Use:     "version",
	GroupID: GroupDiag,
	Short:   "Print the lm version",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if Commit != "" {
			fmt.Printf("lm %s (%s)\n", Version, Commit)
			return
		}
		fmt.Printf("lm %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
