package room

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/temanbulus/nfa-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	pets   []domain.OwnedEntity
	opts   RenderOptions
	styles styles
	output string
}

func newModel(pets []domain.OwnedEntity, opts RenderOptions) model {
	return model{
		pets:   pets,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.pets, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the owned collection once and returns the frame as a string.
func Render(pets []domain.OwnedEntity, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(pets, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
