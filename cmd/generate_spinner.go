package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/dreamai-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type generationDoneMsg struct {
	err error
}

type countdownTickMsg struct{}

type generationSpinnerModel struct {
	spinner   spinner.Model
	countdown *application.Countdown
	label     string
	run       tea.Cmd
	err       error
	done      bool
}

func newGenerationSpinnerModel(label string, countdown *application.Countdown, run tea.Cmd) generationSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return generationSpinnerModel{
		spinner:   s,
		countdown: countdown,
		label:     label,
		run:       run,
	}
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{}
	})
}

func (m generationSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, countdownTick(), m.run)
}

func (m generationSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case countdownTickMsg:
		if m.countdown.Tick() == 0 {
			return m, nil
		}
		return m, countdownTick()
	case generationDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m generationSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.countdown.String())
}

// runGenerationSpinner shows a spinner with a cosmetic countdown until run
// returns. The countdown reaching zero does not stop run.
func runGenerationSpinner(ctx context.Context, output io.Writer, label string, run func(context.Context) error) error {
	runCmd := func() tea.Msg {
		return generationDoneMsg{err: run(ctx)}
	}

	p := tea.NewProgram(
		newGenerationSpinnerModel(label, application.NewCountdown(application.DefaultCountdownSeconds), runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(generationSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
