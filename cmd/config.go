package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bizstat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure bizstat settings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set the NTS service key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		err := config.SetServiceKey(key)
		if err != nil {
			fmt.Printf("Error setting service key: %v\n", err)
			return
		}
		fmt.Println("Service key set successfully.")
	},
}

var getKeyCmd = &cobra.Command{
	Use:   "get-key",
	Short: "Get the current NTS service key",
	Run: func(cmd *cobra.Command, args []string) {
		key := config.GetServiceKey()
		if key == "" {
			fmt.Println("Service key is not set.")
		} else {
			fmt.Printf("Current service key: %s\n", key)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(getKeyCmd)
}
