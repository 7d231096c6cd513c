package cli

import (
	"fmt"

	"github.com/dmleach/frock/global"
	"github.com/dmleach/frock/utils"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for admin_password_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := utils.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), global.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(versionCmd)
}
