package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finovahq/finova/internal/advisor"
	"github.com/finovahq/finova/internal/cli/formatter"
)

var (
	userPrefixStyle      = lipgloss.NewStyle().Foreground(formatter.ColorBlue).Bold(true)
	assistantPrefixStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
)

// adviceMsg carries a generated response back into the update loop.
type adviceMsg struct {
	resp advisor.Response
}

// chatModel is the bubbletea Model for the interactive conversation view.
type chatModel struct {
	app  *App
	sess *advisor.Session

	vp       viewport.Model
	input    textarea.Model
	lines    []string
	thinking bool
	width    int
	height   int
}

func newChatModel(app *App, sess *advisor.Session) chatModel {
	input := textarea.New()
	input.Placeholder = "Ask me anything about your finances..."
	input.SetHeight(1)
	input.ShowLineNumbers = false
	input.Focus()

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	m := chatModel{
		app:   app,
		sess:  sess,
		vp:    vp,
		input: input,
	}
	m.lines = append(m.lines,
		formatter.StyleDim.Render("FINOVA financial advisor. Enter sends, esc or ctrl+c quits."), "")
	return m
}

func (m chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - m.input.Height() - 2
		m.input.SetWidth(msg.Width - 2)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.thinking {
				return m, nil
			}
			m.input.Reset()
			m.thinking = true
			m.lines = append(m.lines, userPrefixStyle.Render("you ▸ ")+question, "")
			m.refreshViewport()
			return m, m.generateCmd(question)
		}

	case adviceMsg:
		m.thinking = false
		m.lines = append(m.lines,
			assistantPrefixStyle.Render("finova ▸ ")+formatter.RenderAdvice(msg.resp.Text), "")
		m.refreshViewport()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// generateCmd runs the advice engine off the update loop and persists the
// new turns.
func (m chatModel) generateCmd(question string) tea.Cmd {
	app, sess := m.app, m.sess
	return func() tea.Msg {
		ctx := context.Background()
		resp := app.Advice.Generate(ctx, sess, question)
		for _, turn := range sess.History[len(sess.History)-2:] {
			// Transcript persistence is best effort inside the TUI.
			_ = app.Conversations.Append(ctx, sess.ID, turn)
		}
		return adviceMsg{resp: resp}
	}
}

func (m *chatModel) refreshViewport() {
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m chatModel) View() string {
	status := ""
	if m.thinking {
		status = formatter.StyleDim.Render("analyzing your question...")
	}
	return m.vp.View() + "\n" + status + "\n" + m.input.View()
}
