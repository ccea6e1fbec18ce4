package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/xmenu/pkg/config"
	"github.com/lvim-tech/xmenu/pkg/menu"
)

// Version се задава при build чрез ldflags
var Version = "dev"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize user config",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitUserConfig(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", config.GetUserConfigPath())
		fmt.Fprintln(cmd.OutOrStdout(), "\nEdit the config file to customize xmenu.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "xmenu %s\n", Version)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported menu variants and their availability",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range menu.Variants() {
			v, err := menu.LookupVariant(name)
			if err != nil {
				continue
			}
			status := "not installed"
			if v.IsAvailable() {
				status = "available"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, status)
		}
	},
}
