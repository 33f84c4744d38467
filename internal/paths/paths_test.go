package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseDirDefault(t *testing.T) {
	t.Setenv("CHATSHELL_HOME", "")
	home, _ := os.UserHomeDir()
	got := BaseDir()
	want := filepath.Join(home, ".chatshell")
	if got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
}

func TestBaseDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHATSHELL_HOME", dir)
	if got := BaseDir(); got != dir {
		t.Errorf("BaseDir() = %q, want %q", got, dir)
	}
	if got := ConfigPath(); got != filepath.Join(dir, "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestLogPath(t *testing.T) {
	got := LogPath()
	if !strings.HasSuffix(got, filepath.Join("logs", "chatshell.log")) {
		t.Errorf("LogPath() = %q, want suffix logs/chatshell.log", got)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv("CHATSHELL_HOME", dir)

	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(LogDir())
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log dir is not a directory")
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("log dir permission = %o, want 0700", perm)
	}
}
