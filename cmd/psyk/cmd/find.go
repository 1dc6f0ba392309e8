/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/symdb"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <symbol>",
	Short: "Find which modules define a symbol",
	Long: `Find which archive modules define a symbol, using the index built by
psyk index.

Example:
  psyk find sprintf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		indexPath, _ := cmd.Flags().GetString("index")
		if indexPath == "" {
			indexPath = cfg.Index.Path
		}

		db, err := symdb.Open(indexPath)
		if err != nil {
			return fmt.Errorf("failed to open symbol index: %w", err)
		}
		defer db.Close()

		locs, err := db.Lookup(args[0])
		if err != nil {
			return err
		}
		if len(locs) == 0 {
			fmt.Printf("%s: not found\n", args[0])
			return nil
		}
		for _, loc := range locs {
			fmt.Printf("%s  %-8s %s\n", loc.Library, loc.Module, loc.Created)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("index", "", "Symbol index directory (default from config)")
}
