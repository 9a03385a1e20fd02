package cmd

import (
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"q"},
	GroupID: GroupQuery,
	Short:   "Query libman manifest files",
	RunE:    requireSubcommand,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
