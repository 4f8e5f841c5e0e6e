package cmd

import (
	"fmt"
	"os"

	"github.com/optum/vmdeploy/pkg/config"
	"github.com/optum/vmdeploy/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var ProjectFile string

var rootCmd = &cobra.Command{
	Use:   "vmdeploy",
	Short: "vmdeploy provisions a template deployment from blob storage and tears it down again",
	Long: `vmdeploy creates a resource group and a storage account, uploads an ARM template
and its parameters to a public container, deploys the template incrementally and
deletes the resource group once you confirm.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ProjectFile, "config", "", fmt.Sprintf("Project file, defaults to ./%s.yml when present", config.ProjectFileName))
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("credential-source", "", "Where credentials come from (path, inline-secret, managed-identity)")
	rootCmd.PersistentFlags().String("azure-auth-location", "", "Path to the SDK auth file, used with the path credential source")
	rootCmd.PersistentFlags().String("azure-subscription-id", "", "Subscription to use instead of the one in the auth file")
	rootCmd.PersistentFlags().String("cloud", "", "Azure cloud (AzurePublic, AzureChina, AzureGovernment)")
	rootCmd.PersistentFlags().StringP("resource-group", "g", "", "Resource group to create and delete")
	rootCmd.PersistentFlags().StringP("location", "l", "", "Region of the resource group")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config for a command from its flags, the environment and the project file
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	project, err := config.ReadProjectFile(ProjectFile)
	if err != nil {
		return config.Config{}, err
	}

	return config.Load(project, flags)
}

// newLogger builds the command logger and routes Azure SDK pipeline events to it
func newLogger(cfg config.Config) *logrus.Entry {
	logger := logging.NewLogger(cfg.LogLevel).WithFields(logrus.Fields{
		"resourceGroup": cfg.ResourceGroup,
		"location":      cfg.Location,
	})
	logging.ForwardAzureSDKLogs(logger)

	return logger
}
