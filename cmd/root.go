package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ai-sdk",
	Short: "lippytm ai-sdk - provider configuration toolkit",
	Long: `ai-sdk gathers credentials and connection parameters for the AI Time
Machines integrations (AI provider, vector store, web3, messaging, data
storage) and checks that every required value is configured.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(logrus.InfoLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCheckCmd())
}
