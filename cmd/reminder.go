/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

var remindOnDate string
var clockInTime string
var clockOutTime string
var clockInMessage string
var clockOutMessage string
var clockInEnabled bool
var clockOutEnabled bool

// remindCmd represents the remind command
var remindCmd = &cobra.Command{
	Use:     "remind",
	Short:   "Manage timed reminders",
	Aliases: []string{"r"},
}

var addRemindCmd = &cobra.Command{
	Use:     "add [HH:MM] [content]",
	Short:   "Add a custom reminder (daily unless --on gives a date)",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
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

		reminder := model.CustomReminder{
			Time:         args[0],
			Content:      args[1],
			Enabled:      true,
			Daily:        remindOnDate == "",
			SpecificDate: remindOnDate,
		}

		if err := store.AddReminder(st, reminder); err != nil {
			log.Printf("❌ Failed to add reminder: %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		when := "every day"
		if remindOnDate != "" {
			when = "on " + remindOnDate
		}
		fmt.Printf("✅ Reminder added: %q at %s %s\n", args[1], args[0], when)
	},
}

var listRemindCmd = &cobra.Command{
	Use:     "list",
	Short:   "List custom reminders",
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

		if len(st.CustomReminders) == 0 {
			fmt.Println("No custom reminders configured. Add one with `dwr remind add`.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("#"),
			text.FgGreen.Sprintf("Time"),
			text.FgGreen.Sprintf("When"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Content")),
			text.FgGreen.Sprintf("Enabled"),
		})

		for i, reminder := range st.CustomReminders {
			when := "daily"
			if !reminder.Daily {
				when = reminder.SpecificDate
			}
			enabled := text.FgHiGreen.Sprintf("on")
			if !reminder.Enabled {
				enabled = text.FgHiRed.Sprintf("off")
			}
			t.AppendRow(table.Row{i + 1, reminder.Time, when, reminder.Content, enabled})
		}
		t.Render()

		fmt.Printf("\nGlobal reminders: enabled=%v, plan summary every %d minutes\n",
			st.ReminderEnabled, st.ReminderInterval)
	},
}

var toggleRemindCmd = &cobra.Command{
	Use:   "toggle [#]",
	Short: "Enable or disable one reminder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("❌ Error: reminder number must be numeric")
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

		enabled, err := store.ToggleReminder(st, index-1)
		if err != nil {
			log.Printf("❌ %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		state := "disabled"
		if enabled {
			state = "enabled"
		}
		fmt.Printf("✅ Reminder #%d %s\n", index, state)
	},
}

var removeRemindCmd = &cobra.Command{
	Use:     "remove [#]",
	Short:   "Delete one reminder",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("❌ Error: reminder number must be numeric")
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

		removed, err := store.RemoveReminder(st, index-1)
		if err != nil {
			log.Printf("❌ %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Removed reminder %q at %s\n", removed.Content, removed.Time)
	},
}

var enableRemindCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the periodic plan summary",
	Run:   func(cmd *cobra.Command, args []string) { setReminderEnabled(true) },
}

var disableRemindCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the periodic plan summary",
	Run:   func(cmd *cobra.Command, args []string) { setReminderEnabled(false) },
}

var intervalRemindCmd = &cobra.Command{
	Use:   "interval [minutes]",
	Short: "Set the plan summary interval in minutes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes <= 0 {
			log.Fatalf("❌ Error: interval must be a positive number of minutes")
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

		st.ReminderInterval = minutes

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Plan summary interval set to %d minutes\n", minutes)
	},
}

var clockRemindCmd = &cobra.Command{
	Use:   "clock",
	Short: "Configure clock-in/out reminders",
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

		settings := st.ClockSettings
		if cmd.Flags().Changed("in-time") {
			settings.ClockInTime = clockInTime
		}
		if cmd.Flags().Changed("out-time") {
			settings.ClockOutTime = clockOutTime
		}
		if cmd.Flags().Changed("in-message") {
			settings.ClockInMessage = clockInMessage
		}
		if cmd.Flags().Changed("out-message") {
			settings.ClockOutMessage = clockOutMessage
		}
		if cmd.Flags().Changed("in") {
			settings.ClockInEnabled = clockInEnabled
		}
		if cmd.Flags().Changed("out") {
			settings.ClockOutEnabled = clockOutEnabled
		}

		if err := store.SetClockSettings(st, settings); err != nil {
			log.Printf("❌ %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Clock reminders: in %s (enabled=%v), out %s (enabled=%v)\n",
			settings.ClockInTime, settings.ClockInEnabled,
			settings.ClockOutTime, settings.ClockOutEnabled)
	},
}

func setReminderEnabled(enabled bool) {
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

	st.ReminderEnabled = enabled

	if err := store.SaveStore(st, *config); err != nil {
		log.Printf("❌ Failed to save data: %v\n", err)
		return
	}

	if enabled {
		fmt.Println("✅ Periodic reminders enabled")
	} else {
		fmt.Println("✅ Periodic reminders disabled")
	}
}

func init() {
	remindCmd.AddCommand(addRemindCmd)
	remindCmd.AddCommand(listRemindCmd)
	remindCmd.AddCommand(toggleRemindCmd)
	remindCmd.AddCommand(removeRemindCmd)
	remindCmd.AddCommand(enableRemindCmd)
	remindCmd.AddCommand(disableRemindCmd)
	remindCmd.AddCommand(intervalRemindCmd)
	remindCmd.AddCommand(clockRemindCmd)
	rootCmd.AddCommand(remindCmd)

	addRemindCmd.Flags().StringVar(&remindOnDate, "on", "", "Fire once on this date (YYYY-MM-DD) instead of daily")
	clockRemindCmd.Flags().StringVar(&clockInTime, "in-time", "09:00", "Clock-in time (HH:MM)")
	clockRemindCmd.Flags().StringVar(&clockOutTime, "out-time", "18:00", "Clock-out time (HH:MM)")
	clockRemindCmd.Flags().StringVar(&clockInMessage, "in-message", "", "Clock-in notification text")
	clockRemindCmd.Flags().StringVar(&clockOutMessage, "out-message", "", "Clock-out notification text")
	clockRemindCmd.Flags().BoolVar(&clockInEnabled, "in", false, "Enable the clock-in reminder")
	clockRemindCmd.Flags().BoolVar(&clockOutEnabled, "out", false, "Enable the clock-out reminder")
}
