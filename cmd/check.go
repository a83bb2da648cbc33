package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lippytm/ai-sdk-go/aisdk"
	"github.com/lippytm/ai-sdk-go/internal/config"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every integration is configured",
		RunE:  runCheck,
	}
	cmd.Flags().String("path", "", "config file path (default: "+config.DefaultConfigPath()+")")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("path")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sdk := aisdk.NewWithOptions(cfg.Options())

	fmt.Println("Checking ai-sdk configuration...")
	fmt.Println()
	fmt.Println("Integration status:")

	verr := sdk.Validate()
	failed := map[string]error{}
	var verrs aisdk.ValidationErrors
	if errors.As(verr, &verrs) {
		for _, ve := range verrs {
			failed[ve.Component] = ve.Err
		}
	}

	for _, name := range []string{"AI", "VectorStore", "Web3", "Messaging", "DataStorage"} {
		if err, ok := failed[name]; ok {
			fmt.Printf("  %-12s: missing\n", name)
			logrus.WithField("component", name).Warn(err)
		} else {
			fmt.Printf("  %-12s: configured\n", name)
		}
	}

	fmt.Println()
	if verr != nil {
		fmt.Printf("%d of 5 integrations need attention\n", len(failed))
		return verr
	}
	fmt.Println("All integrations configured")
	return nil
}
