package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tally/internal/contract"
)

// contractItem wraps a contract to implement list.Item.
type contractItem struct {
	c *contract.Contract
}

func (i contractItem) Title() string {
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.c.Status))

	return fmt.Sprintf("#%d  %s  client %d / contractor %d", i.c.ID, status, i.c.ClientID, i.c.ContractorID)
}

func (i contractItem) Description() string {
	return i.c.Terms
}

func (i contractItem) FilterValue() string {
	return i.c.Terms
}

// contractItemDelegate renders items in the list.
type contractItemDelegate struct{}

func (d contractItemDelegate) Height() int                             { return 2 }
func (d contractItemDelegate) Spacing() int                            { return 0 }
func (d contractItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d contractItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(contractItem)
	if !ok {
		return
	}

	line := ci.Title()
	if desc := ci.Description(); desc != "" {
		line += "\n  " + lipgloss.NewStyle().Faint(true).Render(desc)
	}

	if index == m.Index() {
		line = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Render("> ") + line
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}

type ContractsModel struct {
	CommonModel
	contractService *contract.Service
	profileID       int64

	list    list.Model
	loading bool
	status  string
}

func NewContractsModel(svc *contract.Service, profileID int64) ContractsModel {
	l := list.New([]list.Item{}, contractItemDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("Contracts of profile %d", profileID)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return ContractsModel{
		contractService: svc,
		profileID:       profileID,
		list:            l,
		loading:         true,
	}
}

func (m ContractsModel) Init() tea.Cmd {
	return m.loadContractsCmd()
}

func (m ContractsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadContractsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.contracts))
		for i, c := range msg.contracts {
			items[i] = contractItem{c: c}
		}

		m.list.SetItems(items)

		if len(msg.contracts) == 0 {
			m.status = "No contracts found."
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.list.FilterState() != list.Filtering {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ContractsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading contracts...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

type loadContractsMsg struct {
	contracts []*contract.Contract
	err       error
}

func (m ContractsModel) loadContractsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		contracts, err := m.contractService.ListForProfile(ctx, m.profileID)

		return loadContractsMsg{contracts: contracts, err: err}
	}
}
