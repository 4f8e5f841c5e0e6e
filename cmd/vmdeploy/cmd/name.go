package cmd

import (
	"fmt"

	"github.com/optum/vmdeploy/pkg/naming"
	"github.com/spf13/cobra"
)

var NamePrefix string
var NameLength int

func init() {
	nameCmd.Flags().StringVar(&NamePrefix, "prefix", "st", "Storage account name prefix")
	nameCmd.Flags().IntVar(&NameLength, "length", 10, "Number of random characters after the prefix")

	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Print a random storage account name",
	Long:  `Prints a storage account name the way deploy generates one. The name is not reserved.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := naming.StorageAccountName(NamePrefix, NameLength)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
