package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "Nightfox" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Slate" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
}
