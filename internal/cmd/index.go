package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/export"
)

var indexFile string

var indexCmd = &cobra.Command{
	Use:     "index",
	GroupID: GroupAuthoring,
	Short:   "Maintain an index (.lmi) file",
	RunE:    requireSubcommand,
}

var indexAddCmd = &cobra.Command{
	Use:   "add <name> <lmp-path>",
	Short: "Add a package to the index",
	Long: `Add a package entry to the index, creating the index file if it
does not exist. Adding a name the index already lists is an error;
use 'lm export --index' to re-publish a package.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.AddToIndex(indexFile, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Added %s to %s\n", args[0], indexFile)
		return nil
	},
}

var indexRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a package from the index",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.RemoveFromIndex(indexFile, args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s from %s\n", args[0], indexFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexAddCmd)
	indexCmd.AddCommand(indexRemoveCmd)
	indexCmd.PersistentFlags().StringVarP(&indexFile, "index", "I", "INDEX.lmi", "Path to the index file")
}
