package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matheus3301/chatshell/internal/config"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderList(&buf, nil)
	assert.Equal(t, emptyList+"\n", buf.String())
}

func TestRenderListMarksGroupsAndPending(t *testing.T) {
	var buf bytes.Buffer
	renderList(&buf, []conversation.Item{
		{ID: "1", DisplayName: "Hammad Aslam", PreviewText: "hey", TimestampLabel: "Now", PendingOverlay: overlay.Agreement},
		{ID: "3", DisplayName: "Group name", PreviewText: "hi all", TimestampLabel: "Yesterday", IsGroup: true},
	})
	out := buf.String()
	assert.Contains(t, out, "Hammad Aslam")
	assert.Contains(t, out, "[group]")
	assert.Contains(t, out, "("+overlay.Agreement.String()+")")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cmd = newRootCmd("test")
	cmd.SetArgs([]string{"config", "init", "--config", path})
	assert.Error(t, cmd.Execute())
}

func TestListUnknownTab(t *testing.T) {
	cmd := newRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--tab", "archived", "--config", filepath.Join(t.TempDir(), "none.toml")})
	assert.Error(t, cmd.Execute())
}

func TestListFiltersSeededCatalog(t *testing.T) {
	t.Setenv("CHATSHELL_HOME", t.TempDir())

	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--tab", "groups", "--query", "group"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 2, strings.Count(out.String(), "Group name"))
	_, err := os.Stat(filepath.Join(os.Getenv("CHATSHELL_HOME"), "logs"))
	assert.NoError(t, err)
}

func TestShowPrintsSeededThread(t *testing.T) {
	t.Setenv("CHATSHELL_HOME", t.TempDir())

	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"show", "2"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Anna")
	assert.Contains(t, lines[1], "Hi Brother!")
	assert.Contains(t, lines[6], "[image]")
}

func TestShowUnknownConversation(t *testing.T) {
	t.Setenv("CHATSHELL_HOME", t.TempDir())

	cmd := newRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"show", "99"})
	assert.ErrorContains(t, cmd.Execute(), `"99"`)
}
