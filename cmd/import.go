/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/rainchen/dwr-cli/internal/importer"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

var importDir string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import orders from .xlsx files",
	Long: `Import orders from Excel files. Each sheet needs three columns:
date, order number, and type. Rows whose type contains 发货 become
shipping orders, everything else lands in pre-shipping. The first row is
skipped as a header and duplicate numbers on the same date are ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		st, err := store.LoadStore(*config)
		if err != nil {
			log.Printf("❌ Error loading data: %v\n", err)
			os.Exit(1)
		}

		dir := importDir
		if dir == "" {
			dir = st.ExcelDir
		}

		count, err := importer.ImportDir(st, dir)
		if err != nil {
			log.Printf("❌ Import failed: %v\n", err)
			os.Exit(1)
		}

		if count == 0 {
			fmt.Printf("No new orders found in %s\n", dir)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Imported %d orders from %s\n", count, dir)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importDir, "dir", "d", "", "Directory to scan (default: the configured import directory)")
}
