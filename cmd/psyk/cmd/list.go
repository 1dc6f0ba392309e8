/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the contents of an archive or object file",
	Long: `List the contents of a PSY-Q LIB archive or LNK object file.

Archives list one row per module; object files list every section. The
file format is detected from its magic number.

Examples:
  psyk list libc.lib
  psyk list --recursive --code hex libc.lib
  psyk list startup.obj`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts := cfg.RenderOptions()

		if cmd.Flags().Changed("recursive") {
			opts.Recursive, _ = cmd.Flags().GetBool("recursive")
		}
		if cmd.Flags().Changed("british") {
			opts.BritishSpelling, _ = cmd.Flags().GetBool("british")
		}
		if cmd.Flags().Changed("code") {
			switch format, _ := cmd.Flags().GetString("code"); format {
			case "none":
				opts.CodeFormat = psyq.CodeFormatNone
			case "hex":
				opts.CodeFormat = psyq.CodeFormatHex
			case "disassembly":
				opts.CodeFormat = psyq.CodeFormatDisassembly
			default:
				return fmt.Errorf("unknown code format %q", format)
			}
		}

		lib, obj, err := psyq.Read(args[0])
		if err != nil {
			return err
		}
		if lib != nil {
			fmt.Print(psyq.RenderLib(lib, opts))
			return nil
		}
		fmt.Print(psyq.RenderObj(obj, opts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("recursive", "r", false, "List each module's full section listing")
	listCmd.Flags().String("code", "none", "Code section format: none, hex or disassembly")
	listCmd.Flags().Bool("british", false, "Use en_GB spellings in the listing")
}
