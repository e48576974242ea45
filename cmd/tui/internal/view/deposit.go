package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tally/internal/payment"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

type depositState int

const (
	depositStateForm depositState = iota
	depositStateWorking
	depositStateDone
)

// DepositModel tops up a client balance on behalf of the acting profile.
type DepositModel struct {
	CommonModel
	paymentService *payment.Service
	profileID      int64

	state  depositState
	form   *huh.Form
	status string

	// Form field bindings
	formTarget string
	formAmount string
}

func NewDepositModel(payments *payment.Service, profileID int64) DepositModel {
	m := DepositModel{
		paymentService: payments,
		profileID:      profileID,
		formTarget:     strconv.FormatInt(profileID, 10),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("target").
				Title("Target profile id").
				Value(&m.formTarget).
				Validate(func(s string) error {
					if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
						return fmt.Errorf("must be a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("100.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := parseAmount(s)
					if err != nil {
						return err
					}
					if cents <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	return m
}

func (m DepositModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m DepositModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case depositResultMsg:
		m.state = depositStateDone
		if msg.err != nil {
			m.status = fmt.Sprintf("Deposit failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("New balance of %s: %s",
			msg.target.FullName(), FormatAmount(msg.target.Balance))

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || m.state == depositStateDone {
			return m, Back
		}
	}

	if m.state != depositStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = depositStateWorking

	return m, m.depositCmd()
}

func (m DepositModel) View() string {
	switch m.state {
	case depositStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case depositStateWorking:
		return lipgloss.NewStyle().Padding(2).Render("Depositing...")
	}

	return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nPress any key to go back.")
}

type depositResultMsg struct {
	target *profile.Profile
	err    error
}

func (m DepositModel) depositCmd() tea.Cmd {
	target, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("target")), 10, 64)
	amount, _ := parseAmount(m.form.GetString("amount"))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.paymentService.Deposit(ctx, m.profileID, target, amount)

		return depositResultMsg{target: p, err: err}
	}
}

// parseAmount converts a decimal string like "100.50" into cents without
// going through floating point.
func parseAmount(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid amount")
	}

	cents := units * 100

	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("at most two decimal places")
		}

		for len(frac) < 2 {
			frac += "0"
		}

		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not a valid amount")
		}

		cents += f
	}

	return cents, nil
}
