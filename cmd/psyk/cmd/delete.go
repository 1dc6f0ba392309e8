/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <library> <module>...",
	Short: "Delete modules from an archive",
	Long: `Delete modules from a PSY-Q LIB archive by name. Names not present
in the archive produce a warning. Deleting every module is refused, since
the format has no representation for an empty archive.

Example:
  psyk delete libc.lib SPRINTF`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := psyq.ReadLib(args[0])
		if err != nil {
			return err
		}

		doomed := make(map[string]bool, len(args)-1)
		for _, name := range args[1:] {
			if _, ok := lib.Module(name); !ok {
				fmt.Printf("Warning: module %s not in %s\n", name, args[0])
				continue
			}
			doomed[name] = true
		}

		kept := lib.Modules[:0]
		for i := range lib.Modules {
			if !doomed[lib.Modules[i].Name()] {
				kept = append(kept, lib.Modules[i])
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("refusing to write an empty archive; delete %s instead", args[0])
		}
		removed := len(lib.Modules) - len(kept)
		lib.Modules = kept

		if err := writeArchiveAtomic(lib, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %d modules from %s\n", removed, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
