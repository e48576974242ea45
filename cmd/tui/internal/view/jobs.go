package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/payment"
)

// jobItem wraps an unpaid job to implement list.Item.
type jobItem struct {
	j *contract.Job
}

func (i jobItem) Title() string {
	return fmt.Sprintf("#%d  %s  contract %d", i.j.ID, FormatAmount(i.j.Price), i.j.ContractID)
}

func (i jobItem) Description() string {
	return i.j.Description
}

func (i jobItem) FilterValue() string {
	return i.j.Description
}

type jobItemDelegate struct{}

func (d jobItemDelegate) Height() int                             { return 2 }
func (d jobItemDelegate) Spacing() int                            { return 0 }
func (d jobItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d jobItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ji, ok := item.(jobItem)
	if !ok {
		return
	}

	line := ji.Title()
	if desc := ji.Description(); desc != "" {
		line += "\n  " + lipgloss.NewStyle().Faint(true).Render(desc)
	}

	if index == m.Index() {
		line = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Render("> ") + line
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}

// JobsModel lists the acting client's unpaid jobs and settles the selected
// one on Enter.
type JobsModel struct {
	CommonModel
	contractService *contract.Service
	paymentService  *payment.Service
	profileID       int64

	list    list.Model
	loading bool
	paying  bool
	status  string
}

func NewJobsModel(contracts *contract.Service, payments *payment.Service, profileID int64) JobsModel {
	l := list.New([]list.Item{}, jobItemDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("Unpaid jobs of profile %d", profileID)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return JobsModel{
		contractService: contracts,
		paymentService:  payments,
		profileID:       profileID,
		list:            l,
		loading:         true,
	}
}

func (m JobsModel) Init() tea.Cmd {
	return m.loadJobsCmd()
}

func (m JobsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadJobsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.jobs))
		for i, j := range msg.jobs {
			items[i] = jobItem{j: j}
		}

		m.list.SetItems(items)

		if len(msg.jobs) == 0 {
			m.status = "Nothing to pay."
		}

		return m, nil

	case payResultMsg:
		m.paying = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Payment failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Paid job #%d (%s).", msg.job.ID, FormatAmount(msg.job.Price))
		m.loading = true

		return m, m.loadJobsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			selected, ok := m.list.SelectedItem().(jobItem)
			if !ok || m.paying {
				return m, nil
			}

			m.paying = true
			m.status = fmt.Sprintf("Paying job #%d...", selected.j.ID)

			return m, m.payCmd(selected.j.ID)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m JobsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading unpaid jobs...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

type loadJobsMsg struct {
	jobs []*contract.Job
	err  error
}

func (m JobsModel) loadJobsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		jobs, err := m.contractService.ListUnpaidJobs(ctx, m.profileID)

		return loadJobsMsg{jobs: jobs, err: err}
	}
}

type payResultMsg struct {
	job *contract.Job
	err error
}

func (m JobsModel) payCmd(jobID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		job, err := m.paymentService.Pay(ctx, m.profileID, jobID)

		return payResultMsg{job: job, err: err}
	}
}
