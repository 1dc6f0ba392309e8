/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/psyq"
	"github.com/psykit/psyk/pkg/symdb"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <library>...",
	Short: "Index the exported symbols of archives",
	Long: `Index the exported symbols of PSY-Q LIB archives into the persistent
symbol database, so find can answer "which module defines X" without
scanning archives.

Example:
  psyk index /opt/psyq/lib/*.lib`,
	Args: cobra.MinimumNArgs(1),
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

		total := 0
		for _, path := range args {
			lib, err := psyq.ReadLib(path)
			if err != nil {
				return err
			}
			count, err := db.IndexLibrary(filepath.Base(path), lib)
			if err != nil {
				return err
			}
			fmt.Printf("Indexed %s: %d symbols\n", path, count)
			total += count
		}
		fmt.Printf("Indexed %d symbols from %d archives\n", total, len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().String("index", "", "Symbol index directory (default from config)")
}
