package tui

import (
	"strings"

	"github.com/matheus3301/chatshell/internal/conversation"
)

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// resolveConversation finds a conversation by exact id, then by
// case-insensitive display name, then by name prefix.
func resolveConversation(items []conversation.Item, arg string) (conversation.Item, bool) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return conversation.Item{}, false
	}
	if it, ok := conversation.Find(items, arg); ok {
		return it, true
	}
	for _, it := range items {
		if strings.EqualFold(it.DisplayName, arg) {
			return it, true
		}
	}
	lower := strings.ToLower(arg)
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it.DisplayName), lower) {
			return it, true
		}
	}
	return conversation.Item{}, false
}
