/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

var taskDate string
var taskTime string
var taskPriority string
var taskAllDates bool

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Manage daily tasks",
	Aliases: []string{"t"},
}

var newTaskCmd = &cobra.Command{
	Use:     "new [content]",
	Short:   "Add a daily task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
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

		date := taskDate
		if date == "" {
			date = store.TodayStr()
		}

		task, err := store.AddTask(st, model.Task{
			Date:     date,
			Content:  args[0],
			Priority: taskPriority,
			Time:     taskTime,
		})
		if err != nil {
			log.Printf("❌ Failed to create task: %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Task %s has been created successfully.\n", task.ID)
	},
}

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Short:   "List daily tasks",
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

		dates := []string{taskDate}
		if taskDate == "" {
			if taskAllDates {
				dates = store.TaskDates(st)
			} else {
				dates = []string{store.TodayStr()}
			}
		}

		shown := 0
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"),
			text.FgGreen.Sprintf("Date"),
			text.FgGreen.Sprintf("Time"),
			text.FgGreen.Sprintf("Priority"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Content")),
			text.FgGreen.Sprintf("Done"),
		})

		for _, date := range dates {
			for _, task := range store.TasksOn(st, date) {
				priority := task.PriorityIcon() + " " + task.Priority
				switch task.Priority {
				case "high":
					priority = text.FgHiRed.Sprintf("%s", priority)
				case "low":
					priority = text.FgHiGreen.Sprintf("%s", priority)
				default:
					priority = text.FgHiYellow.Sprintf("%s", priority)
				}

				done := "⬜"
				if task.Completed {
					done = "✅"
				}

				t.AppendRow(table.Row{shortTaskID(task.ID), task.Date, task.Time, priority, task.Content, done})
				shown++
			}
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(strings.Repeat("=", 30))
		fmt.Println(titleStyle(fmt.Sprintf("Tasks: %v tasks shown", shown)))
		fmt.Println(strings.Repeat("=", 30))
		t.Render()
	},
}

var doneTaskCmd = &cobra.Command{
	Use:     "done [task ID]",
	Short:   "Mark a task as completed",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"d"},
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

		task, err := store.MarkTaskDone(st, args[0])
		if err != nil {
			log.Printf("❌ %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Task completed: %s @ %s\n", task.Content, task.Time)
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "remove [task ID]",
	Short:   "Delete a task",
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

		if err := store.RemoveTask(st, args[0]); err != nil {
			log.Printf("❌ %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Task %s removed\n", args[0])
	},
}

// shortTaskID trims the uuid tail so tables stay readable; any unique prefix
// works for done/remove.
func shortTaskID(id string) string {
	if len(id) > 13 {
		return id[:13]
	}
	return id
}

func init() {
	taskCmd.AddCommand(newTaskCmd)
	taskCmd.AddCommand(listTaskCmd)
	taskCmd.AddCommand(doneTaskCmd)
	taskCmd.AddCommand(removeTaskCmd)
	rootCmd.AddCommand(taskCmd)

	newTaskCmd.Flags().StringVarP(&taskDate, "date", "d", "", "Task date (YYYY-MM-DD, default today)")
	newTaskCmd.Flags().StringVar(&taskTime, "time", model.TimeAllDay, "Task time (HH:MM or all-day)")
	newTaskCmd.Flags().StringVarP(&taskPriority, "priority", "p", "medium", "Priority (high, medium, low)")
	listTaskCmd.Flags().StringVarP(&taskDate, "date", "d", "", "List tasks for this date")
	listTaskCmd.Flags().BoolVar(&taskAllDates, "all", false, "List tasks for every date")
}
