/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <library> <object>...",
	Short: "Replace modules in an archive with newer object files",
	Long: `Replace modules in a PSY-Q LIB archive with newly built object
files, matching on module name. An object whose module is not in the
archive is appended, and an object file that cannot be read leaves the
existing module untouched; both produce warnings, not errors.

Example:
  psyk update libc.lib sprintf.obj`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := psyq.ReadLib(args[0])
		if err != nil {
			return err
		}

		replaced, appended := 0, 0
		for _, path := range args[1:] {
			m, err := psyq.NewModuleFromPath(path)
			if err != nil {
				fmt.Printf("Warning: skipping %s: %v\n", path, err)
				continue
			}

			found := false
			for j := range lib.Modules {
				if lib.Modules[j].Name() == m.Name() {
					lib.Modules[j] = m
					found = true
					replaced++
					break
				}
			}
			if !found {
				fmt.Printf("Warning: module %s not in %s, appending\n", m.Name(), args[0])
				lib.Modules = append(lib.Modules, m)
				appended++
			}
		}

		if err := writeArchiveAtomic(lib, args[0]); err != nil {
			return err
		}
		fmt.Printf("Updated %s: %d replaced, %d appended\n", args[0], replaced, appended)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
