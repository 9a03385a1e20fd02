package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/manifest"
)

var (
	queryLibraryQuery string
	queryLibraryPath  string
	queryLibraryKey   string
)

var queryLibraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"l", "lib"},
	Short:   "Query a library (.lml) file",
	Long: `Query a library file.

Query types:
  name       Print the library name.
  path       Print the linkable path (empty for header-only libraries).
  includes   Print include directories, one per line.
  defines    Print preprocessor definitions, one per line.
  uses       Print usage references as Namespace/Library, one per line.
  links      Print link references as Namespace/Library, one per line.
  key        Print every value of the field named by --key.

Examples:
  lm query library -l libs/z.lml -Q includes
  lm query library -l libs/z.lml -Q uses`,
	Args: cobra.NoArgs,
	RunE: runQueryLibrary,
}

func init() {
	queryCmd.AddCommand(queryLibraryCmd)
	queryLibraryCmd.Flags().StringVarP(&queryLibraryQuery, "query", "Q", "", "The query type (name, path, includes, defines, uses, links, key)")
	queryLibraryCmd.Flags().StringVarP(&queryLibraryPath, "library", "l", "", "Path to a library file")
	queryLibraryCmd.Flags().StringVar(&queryLibraryKey, "key", "", "Field key to query (used with --query=key)")
	queryLibraryCmd.MarkFlagRequired("query")
	queryLibraryCmd.MarkFlagRequired("library")
}

func runQueryLibrary(cmd *cobra.Command, args []string) error {
	return queryLibrary(cmd.OutOrStdout(), queryLibraryPath, queryLibraryQuery, queryLibraryKey)
}

func queryLibrary(w io.Writer, libPath, query, key string) error {
	lib, err := manifest.LoadLibrary(libPath)
	if err != nil {
		return err
	}
	switch query {
	case "name":
		fmt.Fprintln(w, lib.Name)
	case "path":
		fmt.Fprintln(w, lib.Path)
	case "includes":
		for _, inc := range lib.Includes {
			fmt.Fprintln(w, inc)
		}
	case "defines":
		for _, def := range lib.Defines {
			fmt.Fprintln(w, def)
		}
	case "uses":
		for _, use := range lib.Uses {
			fmt.Fprintln(w, use.String())
		}
	case "links":
		for _, link := range lib.Links {
			fmt.Fprintln(w, link.String())
		}
	case "key":
		if key == "" {
			return fmt.Errorf("--query=key requires --key")
		}
		for _, field := range lib.Fields.ForKey(key) {
			fmt.Fprintln(w, field.Value)
		}
	default:
		return fmt.Errorf("unknown query type %q (expected name, path, includes, defines, uses, links, or key)", query)
	}
	return nil
}
