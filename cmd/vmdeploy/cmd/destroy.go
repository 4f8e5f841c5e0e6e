package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/optum/vmdeploy/pkg/provision"
	"github.com/spf13/cobra"
)

var AssumeYes bool

func init() {
	destroyCmd.Flags().BoolVarP(&AssumeYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(destroyCmd)
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete the resource group and everything in it",
	Long:  `Deletes the configured resource group, for example after a deploy whose teardown was declined or skipped.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		logger := newLogger(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !AssumeYes {
			confirmed, err := newConfirmer(cfg, logger).Confirm(ctx, fmt.Sprintf("Delete resource group %s and everything in it?", cfg.ResourceGroup))
			if err != nil {
				return err
			}
			if !confirmed {
				logger.Warn("Teardown declined, resources were kept")
				return nil
			}
		}

		p := provision.NewProvisioner(cfg, newProvider(cfg, logger), nil, nil, logger)

		result, err := p.Destroy(ctx)
		logSummary(logger, result, err)

		return err
	},
}
