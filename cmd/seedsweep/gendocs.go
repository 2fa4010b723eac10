package seedsweep

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	var dir string
	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Generate markdown documentation for all commands",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			return doc.GenMarkdownTree(rootCmd, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs", "output directory")
	rootCmd.AddCommand(cmd)
}
