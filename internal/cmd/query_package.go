package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/manifest"
)

var (
	queryPackageQuery string
	queryPackagePath  string
	queryPackageKey   string
)

var queryPackageCmd = &cobra.Command{
	Use:     "package",
	Aliases: []string{"p", "pkg"},
	Short:   "Query a package (.lmp) file",
	Long: `Query a package file.

Query types:
  name        Print the package name.
  namespace   Print the package namespace.
  requires    Print required package names, one per line.
  libraries   Print library file paths, one per line.
  key         Print every value of the field named by --key.

Examples:
  lm query package -p zlib.lmp -Q namespace
  lm query package -p zlib.lmp -Q key --key X-Custom`,
	Args: cobra.NoArgs,
	RunE: runQueryPackage,
}

func init() {
	queryCmd.AddCommand(queryPackageCmd)
	queryPackageCmd.Flags().StringVarP(&queryPackageQuery, "query", "Q", "", "The query type (name, namespace, requires, libraries, key)")
	queryPackageCmd.Flags().StringVarP(&queryPackagePath, "package", "p", "", "Path to a package file")
	queryPackageCmd.Flags().StringVar(&queryPackageKey, "key", "", "Field key to query (used with --query=key)")
	queryPackageCmd.MarkFlagRequired("query")
	queryPackageCmd.MarkFlagRequired("package")
}

func runQueryPackage(cmd *cobra.Command, args []string) error {
	return queryPackage(cmd.OutOrStdout(), queryPackagePath, queryPackageQuery, queryPackageKey)
}

func queryPackage(w io.Writer, pkgPath, query, key string) error {
	pkg, err := manifest.LoadPackage(pkgPath)
	if err != nil {
		return err
	}
	switch query {
	case "name":
		fmt.Fprintln(w, pkg.Name)
	case "namespace":
		fmt.Fprintln(w, pkg.Namespace)
	case "requires":
		for _, req := range pkg.Requires {
			fmt.Fprintln(w, req)
		}
	case "libraries":
		for _, lib := range pkg.Libraries {
			fmt.Fprintln(w, lib)
		}
	case "key":
		if key == "" {
			return fmt.Errorf("--query=key requires --key")
		}
		for _, field := range pkg.Fields.ForKey(key) {
			fmt.Fprintln(w, field.Value)
		}
	default:
		return fmt.Errorf("unknown query type %q (expected name, namespace, requires, libraries, or key)", query)
	}
	return nil
}
