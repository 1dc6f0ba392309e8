/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/config"
	"github.com/psykit/psyk/pkg/psyq"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "psyk [file]",
	Short: "psyk - PSY-Q library and object file toolkit",
	Long: `psyk reads and writes the LIB archives and LNK object files produced
by the PSY-Q development toolchain, lists their contents, maintains a
searchable symbol index across archives, and serves it all over a REST API.

Invoked with a file and no subcommand, psyk prints the file's listing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lib, obj, err := psyq.Read(args[0])
		if err != nil {
			return err
		}
		if lib != nil {
			fmt.Print(psyq.RenderLib(lib, cfg.RenderOptions()))
			return nil
		}
		fmt.Print(psyq.RenderObj(obj, cfg.RenderOptions()))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ~/.config/psyk/config.yaml)")
}

// loadConfig resolves the effective configuration: the --config file when
// given, the default path when one exists there, built-in defaults
// otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadConfig(path)
	}
	defaultPath := config.GetDefaultConfigPath()
	if config.ConfigExists(defaultPath) {
		return config.LoadConfig(defaultPath)
	}
	return config.DefaultConfig(), nil
}
