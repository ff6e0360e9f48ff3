package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheClearCommand(t *testing.T) {
	c := newTestCLI(t)

	// Seed the cache directory with a couple of entries.
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "ab")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one.json", "two.json"} {
		if err := os.WriteFile(filepath.Join(sub, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"cache", "clear"})

	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}

	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("emptied shard directory should be pruned")
	}
}

func TestClearLayoutEntriesLeavesForeignFiles(t *testing.T) {
	dir := t.TempDir()
	shard := filepath.Join(dir, "cd")
	if err := os.MkdirAll(shard, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(shard, "entry.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(shard, "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed, err := clearLayoutEntries(dir)
	if err != nil {
		t.Fatalf("clearLayoutEntries: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(filepath.Join(shard, "notes.txt")); err != nil {
		t.Error("non-entry file should be left alone")
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	c := newTestCLI(t)

	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"cache", "clear"})

	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear on empty cache error: %v", err)
	}
}
