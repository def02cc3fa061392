package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a one-shot financial question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, strings.Join(args, " "))
		},
	}
}

func runAsk(cmd *cobra.Command, app *App, question string) error {
	ctx := cmd.Context()

	sess, err := app.loadSession(ctx)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	resp := app.Advice.Generate(ctx, sess, question)

	// Persist the turns so later invocations can show the transcript.
	for _, turn := range sess.History[len(sess.History)-2:] {
		if err := app.Conversations.Append(ctx, sess.ID, turn); err != nil {
			return fmt.Errorf("recording conversation: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.RenderAdvice(resp.Text))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s  %s\n",
		formatter.StyleDim.Render("intent: "+string(resp.Intent)),
		formatter.SentimentIndicator(resp.Sentiment))
	return nil
}
