/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/rainchen/dwr-cli/internal/util"
	"github.com/spf13/cobra"
)

var planMarkdown bool

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func planMarkdownDoc(workPlan map[string]string) string {
	var b strings.Builder
	b.WriteString("# Weekly work plan\n\n")
	for i := 0; i < 7; i++ {
		b.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", weekdayNames[i], workPlan[strconv.Itoa(i)]))
	}
	return b.String()
}

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:     "plan",
	Short:   "Manage the weekly work plan",
	Aliases: []string{"p"},
}

var showPlanCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the weekly work plan",
	Aliases: []string{"s"},
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

		if planMarkdown {
			rendered, err := glamour.Render(planMarkdownDoc(st.WorkPlan), "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render markdown: %v", err)
				fmt.Println(planMarkdownDoc(st.WorkPlan))
				return
			}
			fmt.Println(rendered)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Day"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Plan")),
		})
		for i := 0; i < 7; i++ {
			t.AppendRow(table.Row{weekdayNames[i], st.WorkPlan[strconv.Itoa(i)]})
		}
		t.Render()
	},
}

var setPlanCmd = &cobra.Command{
	Use:   "set [day 1-7] [content]",
	Short: "Set the plan for one weekday (1 = Monday)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		day, err := strconv.Atoi(args[0])
		if err != nil || day < 1 || day > 7 {
			log.Fatalf("❌ Error: day must be a number between 1 and 7")
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

		st.WorkPlan[strconv.Itoa(day-1)] = args[1]

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Plan for %s updated.\n", weekdayNames[day-1])
	},
}

var editPlanCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Edit the weekly plan in your editor",
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		st, err := store.LoadStore(*config)
		if err != nil {
			log.Printf("❌ Error loading data: %v\n", err)
			os.Exit(1)
		}

		planPath := filepath.Join(config.DataDir, "work_plan.md")
		if err := os.MkdirAll(config.DataDir, 0755); err != nil {
			log.Printf("❌ Failed to create data directory: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(planPath, []byte(planMarkdownDoc(st.WorkPlan)), 0644); err != nil {
			log.Printf("❌ Failed to write plan file: %v\n", err)
			os.Exit(1)
		}

		if err := util.OpenEditor(planPath, *config); err != nil {
			log.Printf("❌ Failed to open editor: %v\n", err)
			os.Exit(1)
		}

		edited, err := os.ReadFile(planPath)
		if err != nil {
			log.Printf("❌ Failed to read edited plan: %v\n", err)
			os.Exit(1)
		}

		workPlan, err := parsePlanMarkdown(string(edited))
		if err != nil {
			log.Printf("❌ Failed to parse edited plan: %v\n", err)
			os.Exit(1)
		}
		st.WorkPlan = workPlan

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Println("✅ Weekly plan updated.")
	},
}

// parsePlanMarkdown reads back the per-weekday sections written by
// planMarkdownDoc. Unknown headings are ignored; missing days keep an empty
// plan line.
func parsePlanMarkdown(doc string) (map[string]string, error) {
	dayIndex := map[string]int{}
	for i, name := range weekdayNames {
		dayIndex[name] = i
	}

	workPlan := map[string]string{}
	current := -1
	var lines []string

	flush := func() {
		if current >= 0 {
			workPlan[strconv.Itoa(current)] = strings.TrimSpace(strings.Join(lines, "\n"))
		}
		lines = nil
	}

	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			day, ok := dayIndex[strings.TrimSpace(strings.TrimPrefix(line, "## "))]
			if !ok {
				current = -1
				continue
			}
			current = day
			continue
		}
		if strings.HasPrefix(line, "# ") {
			continue
		}
		if current >= 0 {
			lines = append(lines, line)
		}
	}
	flush()

	if len(workPlan) == 0 {
		return nil, fmt.Errorf("no weekday sections found")
	}
	for i := 0; i < 7; i++ {
		if _, ok := workPlan[strconv.Itoa(i)]; !ok {
			workPlan[strconv.Itoa(i)] = ""
		}
	}
	return workPlan, nil
}

func init() {
	planCmd.AddCommand(showPlanCmd)
	planCmd.AddCommand(setPlanCmd)
	planCmd.AddCommand(editPlanCmd)
	rootCmd.AddCommand(planCmd)

	showPlanCmd.Flags().BoolVar(&planMarkdown, "md", false, "Render the plan as markdown")
}
