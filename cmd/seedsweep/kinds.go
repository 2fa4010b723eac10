package seedsweep

import (
	"fmt"

	"github.com/seedsweep/seedsweep/internal/detect"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List detector IDs and the credential kinds they report",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%-20s %s\n", "mnemonic_12", "12-word mnemonic")
			fmt.Printf("%-20s %s\n", "mnemonic_24", "24-word mnemonic")
			for _, k := range detect.Kinds() {
				fmt.Printf("%-20s %s\n", k.ID, k.Label)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
