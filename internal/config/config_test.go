package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.File != DefaultFile {
		t.Errorf("File = %q, want %q", cfg.File, DefaultFile)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.Assignee != DefaultAssignee {
		t.Errorf("Assignee = %q, want %q", cfg.Assignee, DefaultAssignee)
	}
}

func TestMergeFileMissingIsFine(t *testing.T) {
	cfg := Default()
	if err := mergeFile(cfg, filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.File != DefaultFile {
		t.Errorf("File changed: %q", cfg.File)
	}
}

func TestMergeFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	content := "file = \"work.json\"\ntheme = \"mono\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := mergeFile(cfg, path); err != nil {
		t.Fatalf("mergeFile: %v", err)
	}
	if cfg.File != "work.json" {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	// unset keys keep their defaults
	if cfg.Assignee != DefaultAssignee {
		t.Errorf("Assignee = %q", cfg.Assignee)
	}
}

func TestMergeFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	if err := os.WriteFile(path, []byte("file = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := mergeFile(Default(), path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
