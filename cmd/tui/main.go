package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tally/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/contract"
	contractStore "github.com/MrJamesThe3rd/tally/internal/contract/store"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/tally/internal/payment/store"
	"github.com/MrJamesThe3rd/tally/internal/report"
	reportStore "github.com/MrJamesThe3rd/tally/internal/report/store"
)

type model struct {
	contractService *contract.Service
	paymentService  *payment.Service
	reportService   *report.Service

	currentView View
	profileID   int64

	profileInput textinput.Model

	contractsView view.ContractsModel
	jobsView      view.JobsModel
	depositView   view.DepositModel
	reportsView   view.ReportsModel
}

type View int

const (
	ViewProfile   View = 0
	ViewMenu      View = 1
	ViewContracts View = 2
	ViewJobs      View = 3
	ViewDeposit   View = 4
	ViewReports   View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	contractSvc := contract.NewService(contractStore.New(db))
	paymentSvc := payment.NewService(paymentStore.New(db, cfg.Settlement.LockTimeout))
	reportSvc := report.NewService(reportStore.New(db))

	pi := textinput.New()
	pi.Placeholder = "1"
	pi.CharLimit = 10
	pi.Width = 12
	pi.Prompt = "Profile id: "
	pi.Focus()

	return model{
		contractService: contractSvc,
		paymentService:  paymentSvc,
		reportService:   reportSvc,
		currentView:     ViewProfile,
		profileInput:    pi,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.currentView {
		case ViewProfile:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				id, err := strconv.ParseInt(strings.TrimSpace(m.profileInput.Value()), 10, 64)
				if err != nil || id <= 0 {
					return m, nil
				}

				m.profileID = id
				m.currentView = ViewMenu

				return m, nil
			}

			m.profileInput, cmd = m.profileInput.Update(msg)

			return m, cmd

		case ViewMenu:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "p":
				m.currentView = ViewProfile
				return m, textinput.Blink
			case "1":
				m.currentView = ViewContracts
				m.contractsView = view.NewContractsModel(m.contractService, m.profileID)

				return m, m.contractsView.Init()
			case "2":
				m.currentView = ViewJobs
				m.jobsView = view.NewJobsModel(m.contractService, m.paymentService, m.profileID)

				return m, m.jobsView.Init()
			case "3":
				m.currentView = ViewDeposit
				m.depositView = view.NewDepositModel(m.paymentService, m.profileID)

				return m, m.depositView.Init()
			case "4":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService)

				return m, m.reportsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewContracts:
		var newModel tea.Model
		newModel, cmd = m.contractsView.Update(msg)
		m.contractsView = newModel.(view.ContractsModel)
	case ViewJobs:
		var newModel tea.Model
		newModel, cmd = m.jobsView.Update(msg)
		m.jobsView = newModel.(view.JobsModel)
	case ViewDeposit:
		var newModel tea.Model
		newModel, cmd = m.depositView.Update(msg)
		m.depositView = newModel.(view.DepositModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewProfile:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tally TUI\n\nWho is acting?\n\n" + m.profileInput.View() + "\n\nEnter: confirm | Ctrl+C: quit",
		)
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tally TUI  (profile " + strconv.FormatInt(m.profileID, 10) + ")\n\n" +
				"1. My Contracts\n" +
				"2. Pay Unpaid Jobs\n" +
				"3. Deposit\n" +
				"4. Reports\n\n" +
				"p. Switch Profile\n" +
				"q. Quit",
		)
	case ViewContracts:
		return m.contractsView.View()
	case ViewJobs:
		return m.jobsView.View()
	case ViewDeposit:
		return m.depositView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
