package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const emptyList = "No messages found"

var (
	listNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	listGroupStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	listPreviewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	listTimeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	listPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the conversation list with a filter applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, _ := cmd.Flags().GetString("tab")
			query, _ := cmd.Flags().GetString("query")
			category, err := conversation.ParseCategory(tab)
			if err != nil {
				return err
			}

			var items []conversation.Item
			app := fx.New(shell.Core(paramsFrom(cmd, true)), fx.Populate(&items))
			if err := app.Err(); err != nil {
				return err
			}
			ctx := context.Background()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(ctx) }()

			visible := conversation.ComputeVisible(items, conversation.FilterState{Category: category, Query: query})
			renderList(cmd.OutOrStdout(), visible)
			return nil
		},
	}
	cmd.Flags().String("tab", "all", "category tab (all, groups, unread)")
	cmd.Flags().String("query", "", "case-insensitive name search")
	return cmd
}

func renderList(w io.Writer, items []conversation.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, emptyList)
		return
	}
	width := 0
	for _, it := range items {
		width = max(width, lipgloss.Width(it.DisplayName))
	}
	for _, it := range items {
		var b strings.Builder
		b.WriteString(listNameStyle.Render(it.DisplayName + strings.Repeat(" ", width-lipgloss.Width(it.DisplayName))))
		b.WriteString("  ")
		b.WriteString(listTimeStyle.Render(fmt.Sprintf("%-10s", it.TimestampLabel)))
		if it.IsGroup {
			b.WriteString(listGroupStyle.Render(" [group]"))
		}
		if it.PendingOverlay != overlay.None {
			b.WriteString(listPendingStyle.Render(" (" + it.PendingOverlay.String() + ")"))
		}
		b.WriteString("\n    ")
		b.WriteString(listPreviewStyle.Render(it.PreviewText))
		fmt.Fprintln(w, b.String())
	}
}
