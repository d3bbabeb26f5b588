package ux

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
)

// ErrInterrupted is returned when the user quits before the estimate lands.
var ErrInterrupted = errors.New("interrupted")

// estimateDoneMsg carries the finished value back onto the UI loop.
type estimateDoneMsg struct {
	value float64
	err   error
}

// estimateModel shows an indeterminate spinner until the estimate completes.
type estimateModel struct {
	spinner spinner.Model
	est     *montecarlopi.Estimate
	value   float64
	done    bool
	err     error
}

func newEstimateModel(est *montecarlopi.Estimate) estimateModel {
	return estimateModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Spinner)),
		est:     est,
	}
}

// waitFor turns the estimate handle into a command whose message is the result.
func waitFor(est *montecarlopi.Estimate) tea.Cmd {
	return func() tea.Msg {
		v, err := est.Wait(context.Background())
		return estimateDoneMsg{value: v, err: err}
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitFor(m.est))
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case estimateDoneMsg:
		m.value, m.err, m.done = msg.value, msg.err, true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err, m.done = ErrInterrupted, true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m estimateModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Sampling %s...\n", m.spinner.View(), Describe(m.est.Request()))
}

// RunEstimate shows a spinner on out while est runs and returns its value.
// A nil in disables keyboard input, which is required when stdin is not a
// terminal.
func RunEstimate(est *montecarlopi.Estimate, in io.Reader, out io.Writer) (float64, error) {
	p := tea.NewProgram(newEstimateModel(est), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("run spinner: %w", err)
	}
	m, ok := final.(estimateModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	if m.err != nil {
		return 0, m.err
	}
	return m.value, nil
}
