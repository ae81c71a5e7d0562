package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type txSubmittedMsg struct {
	hash        string
	explorerURL string
}

type txDoneMsg struct {
	err error
}

// txSpinnerModel shows one transaction moving from wallet approval to
// on-chain confirmation.
type txSpinnerModel struct {
	spinner     spinner.Model
	hint        lipgloss.Style
	label       string
	run         tea.Cmd
	hash        string
	explorerURL string
	err         error
	done        bool
}

func newTxSpinnerModel(label string, run tea.Cmd) txSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return txSpinnerModel{
		spinner: s,
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:   label,
		run:     run,
	}
}

func (m txSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m txSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case txSubmittedMsg:
		m.hash = msg.hash
		m.explorerURL = msg.explorerURL
		return m, nil
	case txDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m txSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.hash == "" {
		return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.hint.Render("waiting for wallet approval"))
	}

	view := fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.hint.Render("tx "+shortHash(m.hash)+" confirming"))
	if m.explorerURL != "" {
		view += "\n  " + m.hint.Render(m.explorerURL)
	}
	return view
}

func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:8] + "…" + hash[len(hash)-4:]
}

// runWithSpinner shows label next to a spinner on output until run returns.
// run reports the submitted transaction hash through submitted; explorer
// turns that hash into a link and may return "".
func runWithSpinner(ctx context.Context, output io.Writer, label string, explorer func(string) string, run func(ctx context.Context, submitted func(hash string)) error) error {
	var p *tea.Program
	submitted := func(hash string) {
		p.Send(txSubmittedMsg{hash: hash, explorerURL: explorer(hash)})
	}
	runCmd := func() tea.Msg {
		return txDoneMsg{err: run(ctx, submitted)}
	}

	p = tea.NewProgram(
		newTxSpinnerModel(label, runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(txSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
