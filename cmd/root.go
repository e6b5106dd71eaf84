package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bizstat/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "bizstat",
	Short: "bizstat - Korean business registration status lookup",
	Long: `bizstat checks the registration status of Korean business numbers
against the NTS status API, either from the command line or through a
small web front-end with spreadsheet upload and export.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.InitConfig)
}
