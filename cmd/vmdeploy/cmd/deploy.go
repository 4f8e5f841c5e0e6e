package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/optum/vmdeploy/pkg/arm"
	"github.com/optum/vmdeploy/pkg/artifacts"
	"github.com/optum/vmdeploy/pkg/auth"
	"github.com/optum/vmdeploy/pkg/cloud"
	"github.com/optum/vmdeploy/pkg/config"
	"github.com/optum/vmdeploy/pkg/provision"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var newProvider = func(cfg config.Config, logger *logrus.Entry) cloud.Provider {
	authenticator := &auth.SDKAuthenticator{Config: cfg, Fs: afero.NewOsFs()}

	provider := cloud.NewAzureProvider(authenticator, cfg.Cloud, arm.DefaultPollFrequency, logger)
	provider.ShowProgress = os.Getenv("LOG_FORMAT") != "JSON"

	return provider
}

var newLoader = func(cfg config.Config, logger *logrus.Entry) provision.ArtifactLoader {
	return artifacts.NewLoader(cfg.WorkDir, logger)
}

var newConfirmer = func(cfg config.Config, logger *logrus.Entry) provision.Confirmer {
	if cfg.SelfDestroy {
		return provision.AutoConfirmer{Logger: logger}
	}
	return provision.NewSurveyConfirmer()
}

func init() {
	deployCmd.Flags().String("template-file", "", "Template to upload, a local path or a go-getter address")
	deployCmd.Flags().String("parameters-file", "", "Parameter file to upload, a local path or a go-getter address")
	deployCmd.Flags().String("template-blob-name", "", "Blob name of the uploaded template")
	deployCmd.Flags().String("parameters-blob-name", "", "Blob name of the uploaded parameter file")
	deployCmd.Flags().String("container-name", "", "Container the artifacts are uploaded to")
	deployCmd.Flags().String("storage-account-prefix", "", "Prefix of the generated storage account name")
	deployCmd.Flags().String("deployment-name", "", "Name of the template deployment")
	deployCmd.Flags().Int("upload-concurrency", 0, "Number of artifacts uploaded at once (1 or 2)")
	deployCmd.Flags().String("work-dir", "", "Directory artifacts are staged in before upload")
	deployCmd.Flags().Bool("self-destroy", false, "Tear down without prompting once the deployment finishes")
	deployCmd.Flags().Bool("teardown-on-deployment-failure", false, "Tear down when the deployment fails instead of keeping the resources for diagnosis")

	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Provision, deploy the template and tear down on confirmation",
	Long: `Creates the resource group and a storage account with a random name, uploads the
template and parameter file to a public container, deploys the template incrementally,
then waits for confirmation before deleting the resource group.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		logger := newLogger(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		p := provision.NewProvisioner(cfg, newProvider(cfg, logger), newLoader(cfg, logger), newConfirmer(cfg, logger), logger)

		result, err := p.Run(ctx)
		logSummary(logger, result, err)

		return err
	},
}

func logSummary(logger *logrus.Entry, result provision.Result, err error) {
	status := "success"
	if err != nil {
		status = "fail"
	}

	slog := logger.WithFields(logrus.Fields{
		"type":     "summary",
		"result":   status,
		"teardown": result.Teardown.String(),
	})

	if result.StorageAccount.Name != "" {
		slog = slog.WithField("storageAccount", result.StorageAccount.Name)
	}

	if err != nil {
		slog.WithError(err).Error(result.Summary())
		return
	}

	slog.Info(result.Summary())
}
