/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <library> <object>...",
	Short: "Create a new archive from object files",
	Long: `Create a new PSY-Q LIB archive containing the given object files.
Module names derive from the file names, creation times from the files'
modification times.

Example:
  psyk create libc.lib sprintf.obj malloc.obj`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		modules, err := modulesFromPaths(args[1:])
		if err != nil {
			return err
		}

		if err := writeArchiveAtomic(psyq.NewLib(modules), args[0]); err != nil {
			return err
		}
		fmt.Printf("Created %s with %d modules\n", args[0], len(modules))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
