package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Default() {
		t.Fatalf("Load = %+v, want %+v", p, Default())
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "reel")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "theme = \"Slate\"\ncompact = true\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || !p.Compact {
		t.Fatalf("Load = %+v, want Slate compact", p)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	want := Prefs{Theme: "Slate", Compact: true}
	if err := Save(prefsFile, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_BlankThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"  \"\ncompact = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if !p.Compact {
		t.Fatal("Compact = false, want true")
	}
}

func TestLoad_InvalidTOMLReturnsDefaultsAndError(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err == nil {
		t.Fatal("Load returned nil error for invalid TOML")
	}
	if p != Default() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}
