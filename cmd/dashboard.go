/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rainchen/dwr-cli/internal/festival"
	"github.com/rainchen/dwr-cli/internal/life"
	"github.com/rainchen/dwr-cli/internal/model"
	"github.com/rainchen/dwr-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	dashTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236")).
			PaddingLeft(1).
			PaddingRight(1)

	dashActiveTabStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				PaddingLeft(1).
				PaddingRight(1)

	dashStatusDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	dashStatusMaking = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	dashStatusPaused = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	dashKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dashActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dashBulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dashHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// orderRef locates one order row in the store from a table cursor.
type orderRef struct {
	date   string
	number string
}

type dashModel struct {
	activeTab    int
	tables       [4]table.Model
	config       model.Config
	st           *model.Store
	shippingRefs []orderRef
	preRefs      []orderRef
	taskIDs      []string
	statusMsg    string
	statusColor  string
	statusExpiry time.Time
	width        int
	height       int
}

func newDashModel(config model.Config, st *model.Store) dashModel {
	m := dashModel{
		activeTab:   1,
		config:      config,
		st:          st,
		statusColor: "86",
	}
	m.setupTables()
	return m
}

func (m *dashModel) setupTables() {
	// Tab 2: shipping orders
	m.tables[0] = table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Order", Width: 20},
			{Title: "Status", Width: 20},
			{Title: "Remark", Width: 30},
		}),
		table.WithRows(m.shippingRows()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	// Tab 3: pre-shipping orders
	m.tables[1] = table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Order", Width: 20},
			{Title: "Status", Width: 20},
			{Title: "Remark", Width: 30},
		}),
		table.WithRows(m.preShippingRows()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	// Tab 4: today's tasks
	m.tables[2] = table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 10},
			{Title: "Priority", Width: 12},
			{Title: "Task", Width: 40},
			{Title: "Done", Width: 6},
		}),
		table.WithRows(m.taskRows()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	// Tab 5: custom reminders
	m.tables[3] = table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 10},
			{Title: "When", Width: 14},
			{Title: "Content", Width: 40},
			{Title: "Enabled", Width: 10},
		}),
		table.WithRows(m.reminderRows()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	for i := range m.tables {
		m.tables[i].SetStyles(s)
	}
}

func (m *dashModel) adjustLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	tableHeight := m.height - 8
	if tableHeight < 10 {
		tableHeight = 10
	}
	for i := range m.tables {
		m.tables[i].SetHeight(tableHeight)
	}
}

func dashStatusCell(status model.OrderStatus) string {
	display := status.Display()
	switch status {
	case model.StatusDone:
		return dashStatusDone.Render(display)
	case model.StatusPaused:
		return dashStatusPaused.Render(display)
	case model.StatusMaking:
		return dashStatusMaking.Render(display)
	default:
		return display
	}
}

func (m *dashModel) orderRows(pre bool) ([]table.Row, []orderRef) {
	collection := store.Collection(m.st, pre)
	rows := []table.Row{}
	refs := []orderRef{}
	for _, date := range store.SortedDates(collection) {
		for _, order := range collection[date] {
			rows = append(rows, table.Row{date, order.Number, dashStatusCell(order.Status), order.Remark})
			refs = append(refs, orderRef{date: date, number: order.Number})
		}
	}
	return rows, refs
}

func (m *dashModel) shippingRows() []table.Row {
	rows, refs := m.orderRows(false)
	m.shippingRefs = refs
	return rows
}

func (m *dashModel) preShippingRows() []table.Row {
	rows, refs := m.orderRows(true)
	m.preRefs = refs
	return rows
}

func (m *dashModel) taskRows() []table.Row {
	rows := []table.Row{}
	ids := []string{}
	for _, task := range store.TasksOn(m.st, store.TodayStr()) {
		done := "⬜"
		if task.Completed {
			done = "✅"
		}
		rows = append(rows, table.Row{task.Time, task.PriorityIcon() + " " + task.Priority, task.Content, done})
		ids = append(ids, task.ID)
	}
	m.taskIDs = ids
	return rows
}

func (m *dashModel) reminderRows() []table.Row {
	rows := []table.Row{}
	for _, reminder := range m.st.CustomReminders {
		when := "daily"
		if !reminder.Daily {
			when = reminder.SpecificDate
		}
		enabled := dashStatusDone.Render("on")
		if !reminder.Enabled {
			enabled = dashStatusPaused.Render("off")
		}
		rows = append(rows, table.Row{reminder.Time, when, reminder.Content, enabled})
	}
	return rows
}

func (m *dashModel) setStatus(msg, color string) {
	m.statusMsg = msg
	m.statusColor = color
	m.statusExpiry = time.Now().Add(3 * time.Second)
}

func (m *dashModel) save() {
	if err := store.SaveStore(m.st, m.config); err != nil {
		m.setStatus(fmt.Sprintf("❌ Failed to save: %v", err), "196")
		return
	}
}

// toggleSelected flips the row under the cursor: order statuses cycle, tasks
// toggle done.
func (m *dashModel) toggleSelected() {
	switch m.activeTab {
	case 2, 3:
		pre := m.activeTab == 3
		refs := m.shippingRefs
		if pre {
			refs = m.preRefs
		}
		cursor := m.tables[m.activeTab-2].Cursor()
		if cursor >= len(refs) {
			return
		}
		ref := refs[cursor]
		status, err := store.CycleOrderStatus(m.st, pre, ref.date, ref.number)
		if err != nil {
			m.setStatus(fmt.Sprintf("❌ %v", err), "196")
			return
		}
		if pre {
			m.tables[1].SetRows(m.preShippingRows())
		} else {
			m.tables[0].SetRows(m.shippingRows())
		}
		m.save()
		m.setStatus(fmt.Sprintf("✅ %s is now %s", ref.number, status.Display()), "82")
	case 4:
		cursor := m.tables[2].Cursor()
		if cursor >= len(m.taskIDs) {
			return
		}
		today := store.TodayStr()
		tasks := m.st.DailyTasks[today]
		for i := range tasks {
			if tasks[i].ID == m.taskIDs[cursor] {
				tasks[i].Completed = !tasks[i].Completed
				break
			}
		}
		m.tables[2].SetRows(m.taskRows())
		m.save()
		m.setStatus("✅ Task toggled", "82")
	case 5:
		cursor := m.tables[3].Cursor()
		enabled, err := store.ToggleReminder(m.st, cursor)
		if err != nil {
			m.setStatus(fmt.Sprintf("❌ %v", err), "196")
			return
		}
		m.tables[3].SetRows(m.reminderRows())
		m.save()
		state := "disabled"
		if enabled {
			state = "enabled"
		}
		m.setStatus("✅ Reminder "+state, "82")
	}
}

func (m *dashModel) autoSync() {
	moved := store.AutoSync(m.st)
	m.save()
	m.tables[0].SetRows(m.shippingRows())
	m.tables[1].SetRows(m.preShippingRows())
	if moved == 0 {
		m.setStatus("✅ Nothing to sync", "86")
	} else {
		m.setStatus(fmt.Sprintf("📌 Auto-synced %d orders", moved), "82")
	}
}

func (m dashModel) Init() tea.Cmd {
	return nil
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.activeTab = 1
		case "2":
			m.activeTab = 2
		case "3":
			m.activeTab = 3
		case "4":
			m.activeTab = 4
		case "5":
			m.activeTab = 5
		case "left":
			if m.activeTab > 1 {
				m.activeTab--
			} else {
				m.activeTab = 5
			}
		case "right":
			if m.activeTab < 5 {
				m.activeTab++
			} else {
				m.activeTab = 1
			}
		case "up", "k", "down", "j":
			if m.activeTab > 1 {
				m.tables[m.activeTab-2], _ = m.tables[m.activeTab-2].Update(msg)
			}
		case " ", "enter":
			m.toggleSelected()
		case "s":
			m.autoSync()
		}
	}

	return m, nil
}

func (m dashModel) View() string {
	header := dashHeaderStyle.Render("📋 dwr - daily work reminder")

	tabs := []string{}
	tabNames := []string{"[1] Overview", "[2] Shipping", "[3] Pre-shipping", "[4] Tasks", "[5] Reminders"}
	for i, name := range tabNames {
		if i+1 == m.activeTab {
			tabs = append(tabs, dashActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, dashTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var content string
	if m.activeTab == 1 {
		content = m.overview()
	} else {
		content = m.tables[m.activeTab-2].View()
	}

	var commands []string
	switch m.activeTab {
	case 1:
		commands = append(commands, dashKeyStyle.Render("1-5")+": "+dashActionStyle.Render("navigate"))
	case 4:
		commands = append(commands, dashKeyStyle.Render("↑↓")+": "+dashActionStyle.Render("navigate"))
		commands = append(commands, dashKeyStyle.Render("space")+": "+dashActionStyle.Render("toggle done"))
	case 5:
		commands = append(commands, dashKeyStyle.Render("↑↓")+": "+dashActionStyle.Render("navigate"))
		commands = append(commands, dashKeyStyle.Render("space")+": "+dashActionStyle.Render("toggle enabled"))
	default:
		commands = append(commands, dashKeyStyle.Render("↑↓")+": "+dashActionStyle.Render("navigate"))
		commands = append(commands, dashKeyStyle.Render("space")+": "+dashActionStyle.Render("cycle status"))
	}
	commands = append(commands, dashKeyStyle.Render("s")+": "+dashActionStyle.Render("auto-sync"))
	commands = append(commands, dashKeyStyle.Render("q")+": "+dashActionStyle.Render("quit"))
	commandRow := strings.Join(commands, dashBulletStyle.Render(" • "))

	if m.statusMsg != "" && time.Now().Before(m.statusExpiry) {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.statusColor))
		commandRow += "\n> " + statusStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		"",
		tabRow,
		content,
		"",
		commandRow,
	)
}

func (m dashModel) overview() string {
	now := time.Now()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Padding(1).Render(now.Format("2006-01-02 Monday")))
	b.WriteString("\n")

	if festivals := festival.Text(m.st.FestivalReminders, now); festivals != "" {
		b.WriteString("\n" + festivals + "\n")
	}

	day := (int(now.Weekday()) + 6) % 7
	if plan := m.st.WorkPlan[fmt.Sprint(day)]; plan != "" {
		b.WriteString("\nToday's plan: " + plan + "\n")
	}

	openTasks := 0
	for _, task := range m.st.DailyTasks[store.TodayStr()] {
		if !task.Completed {
			openTasks++
		}
	}
	b.WriteString(fmt.Sprintf("\nStats:\n"))
	b.WriteString(fmt.Sprintf("  • Shipping orders today: %d\n", len(m.st.ShippingOrders[store.TodayStr()])))
	b.WriteString(fmt.Sprintf("  • Pre-shipping orders: %d dates\n", len(m.st.PreShippingOrders)))
	b.WriteString(fmt.Sprintf("  • Open tasks today: %d\n", openTasks))

	if due := store.DueIncomplete(m.st); len(due) > 0 {
		b.WriteString("\n" + dashStatusPaused.Render(fmt.Sprintf("%d orders due for shipping!", len(due))) + "\n")
	}

	progress, _ := life.Compute(&m.st.LifeSettings, now)
	b.WriteString(fmt.Sprintf("\n%s %s  %s %.1f%%\n",
		progress.StageIcon, progress.DaysText, lifeBar(progress.Value, 30), progress.Value*100))

	return b.String()
}

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Open the interactive dashboard",
	Aliases: []string{"dash"},
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

		p := tea.NewProgram(newDashModel(*config, st), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
