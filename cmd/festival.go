/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rainchen/dwr-cli/internal/festival"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

// festivalCmd represents the festival command
var festivalCmd = &cobra.Command{
	Use:     "festival",
	Short:   "Manage festival reminders",
	Aliases: []string{"f"},
}

var listFestivalCmd = &cobra.Command{
	Use:     "list",
	Short:   "List configured festivals",
	Aliases: []string{"ls"},
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

		keys := make([]string, 0, len(st.FestivalReminders))
		for key := range st.FestivalReminders {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Date"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Festival")),
		})
		for _, key := range keys {
			t.AppendRow(table.Row{key, st.FestivalReminders[key]})
		}
		t.Render()
	},
}

var addFestivalCmd = &cobra.Command{
	Use:     "add [MM-DD] [name]",
	Short:   "Add or update a festival",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		if !festival.ValidKey(args[0]) {
			log.Fatalf("❌ Error: date must be MM-DD, e.g. 10-01")
		}

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

		st.FestivalReminders[args[0]] = args[1]

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Festival %s set to %s\n", args[0], args[1])
	},
}

var removeFestivalCmd = &cobra.Command{
	Use:     "remove [MM-DD]",
	Short:   "Delete a festival",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
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

		name, ok := st.FestivalReminders[args[0]]
		if !ok {
			log.Printf("❌ No festival configured on %s\n", args[0])
			return
		}
		delete(st.FestivalReminders, args[0])

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Removed festival %s (%s)\n", args[0], name)
	},
}

var upcomingFestivalCmd = &cobra.Command{
	Use:     "upcoming",
	Short:   "Show festivals within the next few days",
	Aliases: []string{"up"},
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

		messages := festival.Messages(st.FestivalReminders, time.Now())
		if len(messages) == 0 {
			fmt.Println("No festivals in the next few days.")
			return
		}
		for _, message := range messages {
			fmt.Println(message)
		}
	},
}

func init() {
	festivalCmd.AddCommand(listFestivalCmd)
	festivalCmd.AddCommand(addFestivalCmd)
	festivalCmd.AddCommand(removeFestivalCmd)
	festivalCmd.AddCommand(upcomingFestivalCmd)
	rootCmd.AddCommand(festivalCmd)
}
