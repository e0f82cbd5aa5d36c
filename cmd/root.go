/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dwr",
	Short: "Daily work reminder: weekly plan, shipping orders, tasks and timed reminders",
	Long: `dwr keeps a single JSON document with your weekly work plan, shipping and
pre-shipping orders, daily tasks, festival table and timed reminders, and
drives desktop notifications through the watch daemon.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
