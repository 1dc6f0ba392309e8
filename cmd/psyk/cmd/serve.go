/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psykit/psyk/pkg/api"
	"github.com/psykit/psyk/pkg/symdb"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the psyk REST API server, exposing the archives in the library
directory and the symbol index over HTTP.

Examples:
  psyk serve --library-dir /opt/psyq/lib --port 8080
  psyk serve --bind 0.0.0.0 --index ./psyk-index`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		serverConfig := api.ServerConfig{
			Bind:       cfg.Serve.Bind,
			Port:       cfg.Serve.Port,
			LibraryDir: cfg.Serve.LibraryDir,
		}
		if cmd.Flags().Changed("bind") {
			serverConfig.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("port") {
			serverConfig.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("library-dir") {
			serverConfig.LibraryDir, _ = cmd.Flags().GetString("library-dir")
		}

		indexPath, _ := cmd.Flags().GetString("index")
		if indexPath == "" {
			indexPath = cfg.Index.Path
		}

		var index api.SymbolIndex
		db, err := symdb.Open(indexPath)
		if err != nil {
			fmt.Printf("Warning: symbol index unavailable at %s: %v\n", indexPath, err)
		} else {
			defer db.Close()
			index = db
		}

		return api.StartServer(serverConfig, index)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("library-dir", ".", "Directory holding LIB archives")
	serveCmd.Flags().String("index", "", "Symbol index directory (default from config)")
}
