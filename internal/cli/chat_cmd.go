package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advice conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return runPlainChat(cmd, app)
			}
			return runChatTUI(cmd, app)
		},
	}
}

func runChatTUI(cmd *cobra.Command, app *App) error {
	sess, err := app.loadSession(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	m := newChatModel(app, sess)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

// runPlainChat reads questions line by line when stdout is not a terminal
// (piped input, scripts).
func runPlainChat(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sess, err := app.loadSession(ctx)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		resp := app.Advice.Generate(ctx, sess, line)
		for _, turn := range sess.History[len(sess.History)-2:] {
			if err := app.Conversations.Append(ctx, sess.ID, turn); err != nil {
				return fmt.Errorf("recording conversation: %w", err)
			}
		}
		fmt.Fprintln(out, resp.Text)
		fmt.Fprintln(out, formatter.StyleDim.Render("intent: "+string(resp.Intent)+" sentiment: "+string(resp.Sentiment)))
	}
	return scanner.Err()
}
