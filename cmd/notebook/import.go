package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/notebook"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Load .md/.mdx posts with YAML front matter into the database",
	Long: `import reads every .md and .mdx file below <dir>. Files in a
subdirectory (for example startup-notebook/) join the series of that name
unless their front matter says otherwise. Existing posts with the same slug
are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := notebook.ImportDir(os.DirFS(args[0]), ".")
		if err != nil {
			return err
		}
		store, err := notebook.NewStore(siteCfg.Defaults().DatabasePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		n, err := notebook.ImportPosts(store, posts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d posts from %s\n", n, args[0])
		return nil
	},
}
