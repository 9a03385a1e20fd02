// Package cmd provides CLI commands for the lm tool.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "lm",
	Short:   "libman - library manifest tooling",
	Version: Version,
	Long: `lm works with libman manifests: the build-system-agnostic
index (.lmi), package (.lmp), and library (.lml) files that describe
how to consume installed native libraries.

It can query existing manifest trees, export a project's own package
as a libman tree, and maintain the index that ties them together.`,
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Scripting commands signal their status via exit code alone
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		// Other errors already printed by cobra
		return 1
	}
	return 0
}

// Command group IDs - used by subcommands to organize help output
const (
	GroupQuery     = "query"
	GroupAuthoring = "authoring"
	GroupDiag      = "diag"
)

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupQuery, Title: "Querying:"},
		&cobra.Group{ID: GroupAuthoring, Title: "Authoring:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)

	rootCmd.SetHelpCommandGroupID(GroupDiag)
	rootCmd.SetCompletionCommandGroupID(GroupDiag)
}

// requireSubcommand returns an error for parent commands invoked
// without a subcommand. Without this, Cobra silently shows help and
// exits 0 for unknown subcommands, masking errors.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("requires a subcommand\n\nRun '%s --help' for usage", cmd.CommandPath())
	}
	return fmt.Errorf("unknown command %q for %q\n\nRun '%s --help' for available commands",
		args[0], cmd.CommandPath(), cmd.CommandPath())
}
