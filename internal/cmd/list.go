package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/manifest"
	"github.com/libman-dev/libman/internal/style"
)

var (
	listIndexPath string
	listPlain     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	GroupID: GroupQuery,
	Short:   "List the packages in an index",
	Long: `List every package in an index file with its namespace, library
count, and package file path. Packages whose .lmp file fails to load
are listed with the load error instead of aborting the listing.

With --plain (the default when stdout has no color support), entries
are printed as tab-separated lines for consumption by scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain := listPlain
		if !cmd.Flags().Changed("plain") {
			plain = !style.ColorEnabled()
		}
		return runList(cmd.OutOrStdout(), listIndexPath, plain)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listIndexPath, "index", "I", "INDEX.lmi", "Path to the index file")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Tab-separated output without styling")
}

type listRow struct {
	name      string
	namespace string
	libCount  string
	detail    string
	broken    bool
}

func runList(w io.Writer, indexPath string, plain bool) error {
	idx, err := manifest.LoadIndex(indexPath)
	if err != nil {
		return err
	}
	if len(idx.Entries) == 0 {
		fmt.Fprintln(w, "index lists no packages")
		return nil
	}

	rows := make([]listRow, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		pkg, err := manifest.LoadPackage(entry.Path)
		if err != nil {
			rows = append(rows, listRow{
				name:   entry.Name,
				detail: err.Error(),
				broken: true,
			})
			continue
		}
		rows = append(rows, listRow{
			name:      entry.Name,
			namespace: pkg.Namespace,
			libCount:  strconv.Itoa(len(pkg.Libraries)),
			detail:    entry.Path,
		})
	}

	if plain {
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.name, row.namespace, row.libCount, row.detail)
		}
		return nil
	}

	tbl := style.NewTable(
		style.Column{Name: "Package", Width: 20},
		style.Column{Name: "Namespace", Width: 16},
		style.Column{Name: "Libs", Width: 4, Align: style.AlignRight},
		style.Column{Name: "Path", Width: 48},
	)
	for _, row := range rows {
		if row.broken {
			tbl.AddRow(row.name, style.Error.Render("load failed"), "-", style.Muted.Render(row.detail))
			continue
		}
		tbl.AddRow(row.name, row.namespace, row.libCount, style.Muted.Render(row.detail))
	}
	fmt.Fprint(w, tbl.Render())
	return nil
}
