package tui

import (
	"testing"

	"github.com/matheus3301/chatshell/internal/conversation"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"q", Command{Name: "q"}},
		{"  Open   Anna  ", Command{Name: "open", Args: "Anna"}},
		{"search hi there", Command{Name: "search", Args: "hi there"}},
		{"", Command{Name: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCommand(tt.input); got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveConversation(t *testing.T) {
	items := []conversation.Item{
		{ID: "1", DisplayName: "Hammad Aslam"},
		{ID: "2", DisplayName: "Anna"},
		{ID: "6", DisplayName: "Tabish Bin Tahir"},
	}
	tests := []struct {
		arg    string
		wantID string
		wantOK bool
	}{
		{"2", "2", true},
		{"anna", "2", true},
		{"tab", "6", true},
		{"Hammad Aslam", "1", true},
		{"nobody", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			it, ok := resolveConversation(items, tt.arg)
			if ok != tt.wantOK || it.ID != tt.wantID {
				t.Errorf("resolveConversation(%q) = %q, %v; want %q, %v", tt.arg, it.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
