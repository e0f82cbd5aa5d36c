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
	"github.com/rainchen/dwr-cli/internal/util"
	"github.com/spf13/cobra"
)

var orderDate string
var orderPre bool
var orderRemark string
var orderWorkOrder string
var orderAll bool
var orderFrom string
var orderTo string
var orderStatusFilter string
var orderSearchQuery string
var orderToDate string
var orderConfirm bool

func statusColored(status model.OrderStatus) string {
	display := status.Display()
	switch status {
	case model.StatusMaking:
		return text.FgHiYellow.Sprintf("%s", display)
	case model.StatusDone:
		return text.FgHiGreen.Sprintf("%s", display)
	case model.StatusPaused:
		return text.FgHiMagenta.Sprintf("%s", display)
	default:
		return text.FgHiRed.Sprintf("%s", display)
	}
}

func renderOrderTable(st *model.Store, pre bool) int {
	collection := store.Collection(st, pre)
	today := store.TodayStr()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Date"),
		text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Order")),
		text.FgGreen.Sprintf("Status"),
		text.FgGreen.Sprintf("Work order"),
		text.FgGreen.Sprintf("Remark"),
	})

	shown := 0
	for _, date := range store.SortedDates(collection) {
		if !orderAll && !pre && date != today {
			continue
		}
		if date != model.DateTBD && !util.IsWithinDateRange(date, orderFrom, orderTo) {
			continue
		}

		for _, order := range collection[date] {
			if orderStatusFilter != "" && string(order.Status) != orderStatusFilter {
				continue
			}
			if !util.MatchesQuery(orderSearchQuery, order.Number, order.Remark, order.WorkOrder) {
				continue
			}

			dateCell := date
			if pre && date != model.DateTBD && date <= today && order.Status != model.StatusDone {
				// overdue pre-shipping orders stand out
				dateCell = text.FgHiRed.Sprintf("%s ⚠", date)
			}

			t.AppendRow(table.Row{
				dateCell,
				order.Number,
				statusColored(order.Status),
				order.WorkOrder,
				order.Remark,
			})
			shown++
		}
	}

	t.Render()
	return shown
}

// orderCmd represents the order command
var orderCmd = &cobra.Command{
	Use:     "order",
	Short:   "Manage shipping and pre-shipping orders",
	Aliases: []string{"o"},
}

var addOrderCmd = &cobra.Command{
	Use:     "add [order number]",
	Short:   "Add a shipping order (or a pre-shipping order with --pre)",
	Args:    cobra.ExactArgs(1),
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

		date := orderDate
		if date == "" {
			date = store.TodayStr()
		}

		order := model.Order{
			Number:    args[0],
			Remark:    orderRemark,
			WorkOrder: orderWorkOrder,
			Status:    model.StatusPending,
		}

		if err := store.AddOrder(st, orderPre, date, order); err != nil {
			log.Printf("❌ Failed to add order: %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		kind := "shipping"
		if orderPre {
			kind = "pre-shipping"
		}
		fmt.Printf("✅ Added %s order %s on %s\n", kind, args[0], date)
	},
}

var listOrderCmd = &cobra.Command{
	Use:     "list",
	Short:   "List orders",
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

		// keep the provisional collection in sync before showing it
		if moved := store.AutoSync(st); moved > 0 {
			if err := store.SaveStore(st, *config); err != nil {
				log.Printf("❌ Failed to save data: %v\n", err)
			}
			fmt.Printf("🔄 Auto-synced %d completed pre-shipping order(s)\n", moved)
		}

		kind := "Shipping orders"
		if orderPre {
			kind = "Pre-shipping orders"
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(strings.Repeat("=", 30))
		fmt.Println(titleStyle(kind))
		fmt.Println(strings.Repeat("=", 30))

		shown := renderOrderTable(st, orderPre)
		if shown == 0 {
			fmt.Println("No orders to display. (use --all to include other dates)")
		}
	},
}

var statusOrderCmd = &cobra.Command{
	Use:   "status [order number] [pending|making|done|paused]",
	Short: "Set an order's status",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		number := args[0]

		newStatus, err := model.ParseOrderStatus(args[1])
		if err != nil {
			log.Fatalf("❌ %v", err)
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

		if err := store.SetOrderStatus(st, orderPre, orderDate, number, newStatus); err != nil {
			log.Printf("❌ Failed to update status: %v\n", err)
			return
		}

		// entering done may make the order eligible for migration
		moved := store.AutoSync(st)

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Order %s status updated to %s\n", number, newStatus.Display())
		if moved > 0 {
			fmt.Printf("🔄 Auto-synced %d completed pre-shipping order(s)\n", moved)
		}
	},
}

var cycleOrderCmd = &cobra.Command{
	Use:   "cycle [order number]",
	Short: "Advance an order's status (pending → making → done → paused)",
	Args:  cobra.ExactArgs(1),
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

		newStatus, err := store.CycleOrderStatus(st, orderPre, orderDate, args[0])
		if err != nil {
			log.Printf("❌ Failed to cycle status: %v\n", err)
			return
		}

		moved := store.AutoSync(st)

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Order %s is now %s\n", args[0], newStatus.Display())
		if moved > 0 {
			fmt.Printf("🔄 Auto-synced %d completed pre-shipping order(s)\n", moved)
		}
	},
}

var moveOrderCmd = &cobra.Command{
	Use:     "move [order number]",
	Short:   "Move a pre-shipping order to another date (--to date or TBD)",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"mv"},
	Run: func(cmd *cobra.Command, args []string) {
		if orderToDate == "" {
			log.Fatalf("❌ Error: --to flag is required")
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

		if err := store.MoveOrder(st, args[0], orderDate, orderToDate); err != nil {
			log.Printf("❌ Failed to move order: %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Order %s moved to %s\n", args[0], orderToDate)
	},
}

var removeOrderCmd = &cobra.Command{
	Use:     "remove [order number]",
	Short:   "Delete an order",
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

		date := orderDate
		if date == "" {
			found, _, err := store.FindOrder(st, orderPre, "", args[0])
			if err != nil {
				log.Printf("❌ %v\n", err)
				return
			}
			date = found
		}

		if err := store.RemoveOrder(st, orderPre, date, args[0]); err != nil {
			log.Printf("❌ Failed to remove order: %v\n", err)
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Order %s removed from %s\n", args[0], date)
	},
}

var syncOrderCmd = &cobra.Command{
	Use:   "sync",
	Short: "Migrate completed pre-shipping orders whose date has arrived",
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

		moved := store.AutoSync(st)
		if moved == 0 {
			fmt.Println("✅ Nothing to sync.")
			return
		}

		if err := store.SaveStore(st, *config); err != nil {
			log.Printf("❌ Failed to save data: %v\n", err)
			return
		}

		fmt.Printf("✅ Auto-synced %d pre-shipping order(s) to shipping\n", moved)
	},
}

var pendingOrderCmd = &cobra.Command{
	Use:   "pending",
	Short: "Review due pre-shipping orders that are not done yet",
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

		due := store.DueIncomplete(st)
		if len(due) == 0 {
			fmt.Println("✅ No due pre-shipping orders waiting.")
			return
		}

		if orderConfirm {
			moved := store.ConfirmDue(st, args)
			if err := store.SaveStore(st, *config); err != nil {
				log.Printf("❌ Failed to save data: %v\n", err)
				return
			}
			fmt.Printf("✅ Confirmed due orders, %d migrated to shipping\n", moved)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Date"),
			text.FgGreen.Sprintf("Order"),
			text.FgGreen.Sprintf("Status"),
			text.FgGreen.Sprintf("Remark"),
		})
		for _, d := range due {
			t.AppendRow(table.Row{d.Date, d.Order.Number, statusColored(d.Order.Status), d.Order.Remark})
		}
		t.Render()
		fmt.Printf("\n%d due order(s). Re-run with --confirm to mark them done and sync.\n", len(due))
	},
}

func init() {
	orderCmd.AddCommand(addOrderCmd)
	orderCmd.AddCommand(listOrderCmd)
	orderCmd.AddCommand(statusOrderCmd)
	orderCmd.AddCommand(cycleOrderCmd)
	orderCmd.AddCommand(moveOrderCmd)
	orderCmd.AddCommand(removeOrderCmd)
	orderCmd.AddCommand(syncOrderCmd)
	orderCmd.AddCommand(pendingOrderCmd)
	rootCmd.AddCommand(orderCmd)

	orderCmd.PersistentFlags().BoolVar(&orderPre, "pre", false, "Operate on pre-shipping orders")
	orderCmd.PersistentFlags().StringVarP(&orderDate, "date", "d", "", "Order date (YYYY-MM-DD or TBD)")
	addOrderCmd.Flags().StringVarP(&orderRemark, "remark", "r", "", "Remark")
	addOrderCmd.Flags().StringVarP(&orderWorkOrder, "work-order", "w", "", "Work order number")
	listOrderCmd.Flags().BoolVar(&orderAll, "all", false, "Show all dates (shipping defaults to today)")
	listOrderCmd.Flags().StringVar(&orderFrom, "from", "", "Filter by start date (YYYY-MM-DD)")
	listOrderCmd.Flags().StringVar(&orderTo, "to", "", "Filter by end date (YYYY-MM-DD)")
	listOrderCmd.Flags().StringVar(&orderStatusFilter, "status", "", "Filter by status")
	listOrderCmd.Flags().StringVarP(&orderSearchQuery, "search", "q", "", "Search by order number, remark or work order")
	moveOrderCmd.Flags().StringVar(&orderToDate, "to", "", "Target date (YYYY-MM-DD or TBD)")
	pendingOrderCmd.Flags().BoolVar(&orderConfirm, "confirm", false, "Mark the listed orders done and sync them")
}
