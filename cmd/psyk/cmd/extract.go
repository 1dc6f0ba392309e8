/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <library> [module...]",
	Short: "Extract modules from an archive as object files",
	Long: `Extract modules from a PSY-Q LIB archive, writing each as a LNK
object file named after the module. With no module names, every module is
extracted. Each file's modification time is set to the module's recorded
creation time.

Examples:
  psyk extract libc.lib
  psyk extract libc.lib SPRINTF MALLOC --output-dir ./objs`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output-dir")

		lib, err := psyq.ReadLib(args[0])
		if err != nil {
			return err
		}

		var modules []*psyq.Module
		if len(args) == 1 {
			for i := range lib.Modules {
				modules = append(modules, &lib.Modules[i])
			}
		} else {
			for _, name := range args[1:] {
				m, ok := lib.Module(name)
				if !ok {
					return fmt.Errorf("module %s not found in %s", name, args[0])
				}
				modules = append(modules, m)
			}
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for _, m := range modules {
			path := filepath.Join(outputDir, strings.ToLower(m.Name())+".obj")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := psyq.WriteObj(m.Obj, f); err != nil {
				f.Close()
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", path, err)
			}

			if created, ok := m.Created(); ok {
				if err := os.Chtimes(path, created, created); err != nil {
					fmt.Printf("Warning: could not set timestamp on %s: %v\n", path, err)
				}
			}
			fmt.Printf("Extracted %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("output-dir", "o", ".", "Directory to write object files into")
}
