package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/libman-dev/libman/internal/tui/browse"
)

var browseIndexPath string

var browseCmd = &cobra.Command{
	Use:     "browse",
	GroupID: GroupQuery,
	Short:   "Browse an index interactively",
	Long: `Open an interactive browser over an index file: navigate packages
with the arrow keys, inspect each package's libraries, press r to
reload the index and q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseIndexPath, "index", "I", "INDEX.lmi", "Path to the index file")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("browse requires an interactive terminal (use 'lm list' in scripts)")
	}

	p := tea.NewProgram(browse.New(browseIndexPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
