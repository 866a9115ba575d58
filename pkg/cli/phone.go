package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bootcamp-landing/pkg/utils"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <number>...",
	Short: "Print phone numbers in display format",
	Long: `Print each argument the way the registration form displays it, for
example "221771234567" becomes "+221 77 123 45 67".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, raw := range args {
			fmt.Fprintln(cmd.OutOrStdout(), utils.NormalizePhone(raw))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phoneCmd)
}
