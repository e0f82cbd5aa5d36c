/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rainchen/dwr-cli/internal/festival"
	"github.com/rainchen/dwr-cli/internal/importer"
	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/rainchen/dwr-cli/internal/notify"
	"github.com/rainchen/dwr-cli/internal/schedule"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/rainchen/dwr-cli/internal/util"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder daemon",
	Long: `Run the reminder daemon in the foreground. It delivers the periodic
plan summary, custom reminders, task alerts, and clock-in/out
notifications, imports dropped Excel files, and auto-syncs overdue
pre-shipping orders at midnight. Stop it with Ctrl-C.`,
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

		if err := os.MkdirAll(config.DataDir, 0755); err != nil {
			log.Fatalf("❌ Failed to create data directory: %v", err)
		}
		lockPath := filepath.Join(config.DataDir, ".dwr.lock")
		if err := util.CreateLockFile(lockPath); err != nil {
			log.Fatalf("❌ %v", err)
		}

		notifier := schedule.NewTaskNotifier()
		lastSummary := time.Time{}

		c := cron.New(cron.WithSeconds())

		// Per-minute check: custom reminders, task alerts, and the
		// interval-based plan summary.
		_, err = c.AddFunc("0 * * * * *", func() {
			now := time.Now()

			st, err := store.LoadStore(*config)
			if err != nil {
				log.Printf("⚠️ Failed to reload data: %v", err)
				return
			}

			// The global switch silences everything; fired-alert state
			// is dropped so alerts re-arm on re-enable.
			if !st.ReminderEnabled {
				notifier.Reset()
				return
			}

			for _, reminder := range schedule.DueReminders(st.CustomReminders, now) {
				notify.Send("⏰ Reminder", reminder.Content)
			}

			for _, alert := range notifier.Check(st, now) {
				if alert.Upcoming {
					notify.Send("📌 Task coming up",
						fmt.Sprintf("%s at %s", alert.Task.Content, alert.Task.Time))
				} else {
					notify.Send("📌 Task due now",
						fmt.Sprintf("%s (%s)", alert.Task.Content, alert.Task.Time))
				}
			}

			interval := time.Duration(st.ReminderInterval) * time.Minute
			if interval <= 0 || now.Sub(lastSummary) < interval {
				return
			}
			lastSummary = now

			if count, err := importer.ImportDir(st, st.ExcelDir); err != nil {
				log.Printf("⚠️ Excel import failed: %v", err)
			} else if count > 0 {
				if err := store.SaveStore(st, *config); err != nil {
					log.Printf("⚠️ Failed to save imported orders: %v", err)
				} else {
					log.Printf("📥 Imported %d orders from %s", count, st.ExcelDir)
				}
			}

			notify.Send("📋 Daily work reminder", planSummary(st, now))
		})
		if err != nil {
			log.Fatalf("❌ Failed to schedule the minute check: %v", err)
		}

		// Midnight: move overdue done pre-shipping orders into shipping.
		_, err = c.AddFunc("0 0 0 * * *", func() {
			st, err := store.LoadStore(*config)
			if err != nil {
				log.Printf("⚠️ Failed to reload data: %v", err)
				return
			}
			if store.AutoSync(st) > 0 {
				if err := store.SaveStore(st, *config); err != nil {
					log.Printf("⚠️ Failed to save auto-synced orders: %v", err)
				}
			}
		})
		if err != nil {
			log.Fatalf("❌ Failed to schedule the midnight sync: %v", err)
		}

		if st.ClockSettings.ClockInEnabled {
			addClockJob(c, *config, st.ClockSettings.ClockInTime, "🌅 Clock in", func(s model.ClockSettings) string {
				return s.ClockInMessage
			})
		}
		if st.ClockSettings.ClockOutEnabled {
			addClockJob(c, *config, st.ClockSettings.ClockOutTime, "🌆 Clock out", func(s model.ClockSettings) string {
				return s.ClockOutMessage
			})
		}

		c.Start()
		log.Printf("👀 Watching, plan summary every %d minutes. Press Ctrl-C to stop.", st.ReminderInterval)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Stopping daemon...")
		c.Stop()
		util.RemoveLockFile(lockPath)
	},
}

// addClockJob registers a daily notification at hhmm. The message is read
// from the store at fire time so edits apply without a restart.
func addClockJob(c *cron.Cron, config model.Config, hhmm, title string, message func(model.ClockSettings) string) {
	spec, err := schedule.CronSpec(hhmm)
	if err != nil {
		log.Printf("⚠️ Skipping clock reminder: %v", err)
		return
	}
	_, err = c.AddFunc(spec, func() {
		st, err := store.LoadStore(config)
		if err != nil {
			log.Printf("⚠️ Failed to reload data: %v", err)
			return
		}
		notify.Send(title, message(st.ClockSettings))
	})
	if err != nil {
		log.Printf("⚠️ Failed to schedule clock reminder at %s: %v", hhmm, err)
	}
}

// planSummary builds the periodic notification body: today's plan line,
// festivals coming up, open tasks, and orders due for shipping.
func planSummary(st *model.Store, now time.Time) string {
	var parts []string

	day := (int(now.Weekday()) + 6) % 7
	if plan := st.WorkPlan[strconv.Itoa(day)]; plan != "" {
		parts = append(parts, plan)
	}

	if festivals := festival.Text(st.FestivalReminders, now); festivals != "" {
		parts = append(parts, festivals)
	}

	open := 0
	for _, task := range st.DailyTasks[now.Format("2006-01-02")] {
		if !task.Completed {
			open++
		}
	}
	if open > 0 {
		parts = append(parts, fmt.Sprintf("%d open tasks today", open))
	}

	if due := store.DueIncomplete(st); len(due) > 0 {
		parts = append(parts, fmt.Sprintf("%d orders due for shipping", len(due)))
	}

	if len(parts) == 0 {
		return "Nothing scheduled today."
	}
	return strings.Join(parts, "\n")
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
