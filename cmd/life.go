/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rainchen/dwr-cli/internal/life"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	lifeBarFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	lifeBarEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lifeDaysStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// lifeCmd represents the life command
var lifeCmd = &cobra.Command{
	Use:   "life",
	Short: "Show the life countdown",
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

		progress, changed := life.Compute(&st.LifeSettings, time.Now())
		if changed {
			if err := store.SaveStore(st, *config); err != nil {
				log.Printf("⚠️ Failed to save countdown baseline: %v\n", err)
			}
		}

		fmt.Printf("%s %s (age %d, ideal %d)\n",
			progress.StageIcon, progress.StageText,
			st.LifeSettings.CurrentAge, st.LifeSettings.IdealAge)
		fmt.Printf("%s %.1f%%\n", lifeBar(progress.Value, 40), progress.Value*100)
		fmt.Println(lifeDaysStyle.Render(progress.DaysText))
	},
}

var setLifeCmd = &cobra.Command{
	Use:   "set [current age] [ideal age]",
	Short: "Set the ages and reset the countdown baseline",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		currentAge, err := strconv.Atoi(args[0])
		if err != nil || currentAge < 0 {
			log.Fatalf("❌ Error: current age must be a non-negative number")
		}
		idealAge, err := strconv.Atoi(args[1])
		if err != nil || idealAge <= currentAge {
			log.Fatalf("❌ Error: ideal age must be greater than current age")
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

		life.Reset(&st.LifeSettings, currentAge, idealAge)
		progress, _ := life.Compute(&st.LifeSettings, time.Now())

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Life countdown reset: %s\n", progress.DaysText)
	},
}

func lifeBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	return lifeBarFilled.Render(strings.Repeat("█", filled)) +
		lifeBarEmpty.Render(strings.Repeat("░", width-filled))
}

func init() {
	lifeCmd.AddCommand(setLifeCmd)
	rootCmd.AddCommand(lifeCmd)
}
