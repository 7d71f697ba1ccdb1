package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blackjack-cli/internal/blackjack"
)

var _ blackjack.Prompter = (*TUIPrompter)(nil)

// questionModel is a one-shot Bubble Tea model that asks a single question
type questionModel struct {
	question  string
	input     textinput.Model
	styles    *Styles
	answer    string
	done      bool
	cancelled bool
}

func newQuestionModel(question string, styles *Styles) questionModel {
	ti := textinput.New()
	ti.Placeholder = "type your answer and press enter"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Player

	return questionModel{question: question, input: ti, styles: styles}
}

func (m questionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m questionModel) View() string {
	if m.done {
		return m.styles.Prompt.Render(m.question) + " " + m.answer + "\n"
	}
	if m.cancelled {
		return m.styles.Prompt.Render(m.question) + "\n"
	}
	return m.styles.Prompt.Render(m.question) + "\n" + m.input.View() + "\n"
}

// TUIPrompter asks each question with a small Bubble Tea text input
type TUIPrompter struct {
	asker
	in     io.Reader
	out    io.Writer
	styles *Styles
}

// NewTUIPrompter creates a prompter reading keys from in and drawing on out.
// Nil in and out mean the terminal.
func NewTUIPrompter(in io.Reader, out io.Writer, styles *Styles) *TUIPrompter {
	if out == nil {
		out = os.Stdout
	}
	p := &TUIPrompter{in: in, out: out, styles: styles}
	p.asker = asker{read: p.readLine, warn: p.warn}
	return p
}

func (p *TUIPrompter) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(p.out)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}

	final, err := tea.NewProgram(newQuestionModel(question, p.styles), opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}

	m, ok := final.(questionModel)
	if !ok || m.cancelled {
		return "", ErrInterrupted
	}
	return m.answer, nil
}

func (p *TUIPrompter) warn(msg string) {
	fmt.Fprintln(p.out, p.styles.Error.Render(msg))
}
