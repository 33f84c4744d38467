package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/shell"
	"github.com/matheus3301/chatshell/internal/store"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	showOutgoingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("157"))
	showIncomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	showImageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true)
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Print the seeded thread of one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var db *store.DB
			app := fx.New(shell.Core(paramsFrom(cmd, true)), fx.Populate(&db))
			if err := app.Err(); err != nil {
				return err
			}
			ctx := context.Background()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(ctx) }()

			it, err := db.GetConversation(args[0])
			if err != nil {
				return err
			}
			if it == nil {
				return fmt.Errorf("no conversation with id %q", args[0])
			}
			msgs, err := db.ListMessages(it.ID)
			if err != nil {
				return err
			}
			renderThread(cmd.OutOrStdout(), *it, msgs)
			return nil
		},
	}
}

func renderThread(w io.Writer, it conversation.Item, msgs []timeline.Message) {
	fmt.Fprintln(w, listNameStyle.Render(it.DisplayName)+"  "+listTimeStyle.Render(it.TimestampLabel))
	for _, m := range msgs {
		style, who := showIncomingStyle, "<"
		if m.Outgoing {
			style, who = showOutgoingStyle, ">"
		}
		body := style.Render(m.Text)
		if m.Kind == timeline.Image {
			body = showImageStyle.Render("[image] " + m.ImageRef)
		}
		fmt.Fprintf(w, "  %s %s\n", who, body)
	}
}
