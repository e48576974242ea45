package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tally/internal/report"
)

type reportsState int

const (
	reportsStateRange reportsState = iota
	reportsStateLoading
	reportsStateResults
)

// ReportsModel asks for a date range and shows the best-earning profession
// and the biggest-paying clients inside it.
type ReportsModel struct {
	CommonModel
	reportService *report.Service

	state      reportsState
	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int
	err        error

	professions []report.ProfessionEarnings
	clients     []report.ClientSpend
}

func NewReportsModel(reports *report.Service) ReportsModel {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "Start Date: "
	si.Focus()

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "End Date:   "

	return ReportsModel{
		reportService: reports,
		startInput:    si,
		endInput:      ei,
	}
}

func (m ReportsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportsMsg:
		if msg.err != nil {
			m.state = reportsStateRange
			m.err = msg.err

			return m, nil
		}

		m.state = reportsStateResults
		m.professions = msg.professions
		m.clients = msg.clients

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case reportsStateRange:
			return m.updateRange(msg)
		case reportsStateResults:
			return m, Back
		}
	}

	return m, nil
}

func (m ReportsModel) updateRange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, Back

	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		m.focusIndex = (m.focusIndex + 1) % 2
		if m.focusIndex == 0 {
			m.startInput.Focus()
			m.endInput.Blur()
		} else {
			m.startInput.Blur()
			m.endInput.Focus()
		}

		return m, nil

	case tea.KeyEnter:
		r, err := m.parseRange()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.state = reportsStateLoading
		m.err = nil

		return m, m.loadReportsCmd(r)
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

func (m ReportsModel) parseRange() (report.Range, error) {
	start, err := time.Parse(time.DateOnly, strings.TrimSpace(m.startInput.Value()))
	if err != nil {
		return report.Range{}, fmt.Errorf("start date must be YYYY-MM-DD")
	}

	end, err := time.Parse(time.DateOnly, strings.TrimSpace(m.endInput.Value()))
	if err != nil {
		return report.Range{}, fmt.Errorf("end date must be YYYY-MM-DD")
	}

	// Make the end day inclusive.
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return report.Range{Start: start, End: end}, nil
}

func (m ReportsModel) View() string {
	switch m.state {
	case reportsStateRange:
		errLine := ""
		if m.err != nil {
			errLine = "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error())
		}

		return lipgloss.NewStyle().Padding(1).Render(
			"Reports\n\n" + m.startInput.View() + "\n" + m.endInput.View() + errLine +
				"\n\nEnter: run | Tab: switch | Esc: back",
		)

	case reportsStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Crunching numbers...")
	}

	var b strings.Builder

	b.WriteString("Best profession\n")

	if len(m.professions) == 0 {
		b.WriteString("  no settled jobs in range\n")
	}

	for _, p := range m.professions {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", p.Profession, FormatAmount(p.Earned)))
	}

	b.WriteString("\nBest clients\n")

	if len(m.clients) == 0 {
		b.WriteString("  no payments in range\n")
	}

	for _, c := range m.clients {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", c.FullName, FormatAmount(c.Paid)))
	}

	b.WriteString("\nPress any key to go back.")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type loadReportsMsg struct {
	professions []report.ProfessionEarnings
	clients     []report.ClientSpend
	err         error
}

func (m ReportsModel) loadReportsCmd(r report.Range) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		professions, err := m.reportService.BestProfession(ctx, r)
		if err != nil {
			return loadReportsMsg{err: err}
		}

		clients, err := m.reportService.BestClients(ctx, r, report.DefaultClientLimit)
		if err != nil {
			return loadReportsMsg{err: err}
		}

		return loadReportsMsg{professions: professions, clients: clients}
	}
}
