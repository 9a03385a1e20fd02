package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/libman-dev/libman/internal/export"
)

var (
	exportProject string
	exportDest    string
	exportIndex   string
)

var exportCmd = &cobra.Command{
	Use:     "export",
	GroupID: GroupAuthoring,
	Short:   "Export the project's package as a libman tree",
	Long: `Export the package described by the project's libman.toml as a
libman export root (<name>.libman-export) containing the package file
and one library file per declared library.

With --index, the exported package is also registered in the given
index file, replacing any previous entry for the same package.

Examples:
  lm export
  lm export --project ./mylib --dest ./out
  lm export --index ./out/INDEX.lmi`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportCollectDest string

var exportCollectCmd = &cobra.Command{
	Use:   "collect <dir>",
	Short: "Collect export roots from a build tree",
	Long: `Find every *.libman-export root under the given directory and copy
it into the destination directory. Fails if two roots share a name.

Examples:
  lm export collect ./build --dest ./prefix/lm`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCollect,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCollectCmd)
	exportCmd.Flags().StringVar(&exportProject, "project", ".", "Project root containing libman.toml")
	exportCmd.Flags().StringVar(&exportDest, "dest", ".", "Directory to write the export root into")
	exportCmd.Flags().StringVar(&exportIndex, "index", "", "Index file to register the package in")
	exportCollectCmd.Flags().StringVar(&exportCollectDest, "dest", ".", "Directory to copy export roots into")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := export.LoadConfig(exportProject)
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s in %s", export.ConfigName, exportProject)
	}

	pkg, err := export.Resolve(cfg, exportProject)
	if err != nil {
		return err
	}
	for _, lib := range pkg.Libraries {
		for _, info := range lib.Infos {
			fmt.Printf("%s/%s: %s\n", pkg.Name, lib.Name, info)
		}
		for _, warning := range lib.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s/%s: %s\n", pkg.Name, lib.Name, warning)
		}
	}

	root, err := export.WriteTree(pkg, exportDest)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s to %s\n", pkg.Name, root)

	if exportIndex != "" {
		lmpPath := export.PackageFilePath(root, pkg.Name)
		if err := export.ReplaceInIndex(exportIndex, pkg.Name, lmpPath); err != nil {
			return fmt.Errorf("registering %s in index: %w", pkg.Name, err)
		}
		fmt.Printf("Registered %s in %s\n", pkg.Name, exportIndex)
	}
	return nil
}

func runExportCollect(cmd *cobra.Command, args []string) error {
	copied, err := export.Collect(args[0], exportCollectDest)
	if err != nil {
		return err
	}
	for _, root := range copied {
		fmt.Println(root)
	}
	if len(copied) == 0 {
		fmt.Fprintln(os.Stderr, "no export roots found")
	}
	return nil
}
