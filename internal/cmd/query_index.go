package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/manifest"
)

var (
	queryIndexQuery   string
	queryIndexPath    string
	queryIndexPackage string
)

var queryIndexCmd = &cobra.Command{
	Use:     "index",
	Aliases: []string{"i", "idx"},
	Short:   "Query an index (.lmi) file",
	Long: `Query an index file.

Query types:
  has-package    Exit 0 if the package is in the index, 1 otherwise.
  package-path   Print the path of the package's .lmp file.

Examples:
  lm query index -I INDEX.lmi -Q has-package -p zlib
  lm query index -I INDEX.lmi -Q package-path -p zlib`,
	Args: cobra.NoArgs,
	RunE: runQueryIndex,
}

func init() {
	queryCmd.AddCommand(queryIndexCmd)
	queryIndexCmd.Flags().StringVarP(&queryIndexQuery, "query", "Q", "", "The query type (has-package, package-path)")
	queryIndexCmd.Flags().StringVarP(&queryIndexPath, "index", "I", "", "Path to the index file")
	queryIndexCmd.Flags().StringVarP(&queryIndexPackage, "package", "p", "", "Name of the package to query")
	queryIndexCmd.MarkFlagRequired("query")
	queryIndexCmd.MarkFlagRequired("index")
	queryIndexCmd.MarkFlagRequired("package")
}

func runQueryIndex(cmd *cobra.Command, args []string) error {
	code, err := queryIndex(cmd.OutOrStdout(), queryIndexPath, queryIndexQuery, queryIndexPackage)
	if err != nil {
		return err
	}
	if code != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return NewSilentExit(code)
	}
	return nil
}

// queryIndex runs an index query and returns the process exit code.
func queryIndex(w io.Writer, indexPath, query, pkgName string) (int, error) {
	idx, err := manifest.LoadIndex(indexPath)
	if err != nil {
		return 0, err
	}
	switch query {
	case "has-package":
		if idx.Has(pkgName) {
			return 0, nil
		}
		return 1, nil
	case "package-path":
		entry, ok := idx.Get(pkgName)
		if !ok {
			fmt.Fprintln(os.Stderr, "No such package:", pkgName)
			return 2, nil
		}
		fmt.Fprintln(w, entry.Path)
		return 0, nil
	}
	return 0, fmt.Errorf("unknown query type %q (expected has-package or package-path)", query)
}
