/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <library> <object>...",
	Short: "Add object files to an existing archive",
	Long: `Add object files to an existing PSY-Q LIB archive. A module whose
name is already present in the archive is an error; use update to replace
modules.

Example:
  psyk add libc.lib qsort.obj`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := psyq.ReadLib(args[0])
		if err != nil {
			return err
		}

		modules, err := modulesFromPaths(args[1:])
		if err != nil {
			return err
		}
		for i := range modules {
			if _, exists := lib.Module(modules[i].Name()); exists {
				return fmt.Errorf("module %s already exists in %s", modules[i].Name(), args[0])
			}
			lib.Modules = append(lib.Modules, modules[i])
		}

		if err := writeArchiveAtomic(lib, args[0]); err != nil {
			return err
		}
		fmt.Printf("Added %d modules to %s\n", len(modules), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
