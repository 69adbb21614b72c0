package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "mocha", themeName: "mocha", wantName: "mocha"},
		{name: "macchiato", themeName: "macchiato", wantName: "macchiato"},
		{name: "frappe", themeName: "frappe", wantName: "frappe"},
		{name: "latte", themeName: "latte", wantName: "latte"},
		{name: "mixed case", themeName: " Latte ", wantName: "latte"},
		{name: "empty name", themeName: "", wantName: DefaultName},
		{name: "unknown name", themeName: "nonexistent", wantName: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_EveryThemeIsComplete(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t.Fatalf("Load(%q).Name = %q, want an embedded file for every config theme", name, th.Name)
			}
			colors := map[string]string{
				"base.bg":         th.Base.Bg,
				"base.highlight":  th.Base.Highlight,
				"base.selection":  th.Base.Selection,
				"base.fg":         th.Base.Fg,
				"base.muted":      th.Base.Muted,
				"base.accent":     th.Base.Accent,
				"base.warning":    th.Base.Warning,
				"rows.universal":  th.Rows.Universal,
				"rows.earth":      th.Rows.Earth,
				"rows.kerbin":     th.Rows.Kerbin,
				"rows.mission":    th.Rows.Mission,
				"modal.bg":        th.Modal.Bg,
				"modal.border":    th.Modal.Border,
				"modal.text":      th.Modal.Text,
				"modal.muted":     th.Modal.Muted,
				"modal.highlight": th.Modal.Highlight,
			}
			for key, hex := range colors {
				if _, ok := parse(hex); !ok {
					t.Errorf("%s = %q, want #rrggbb", key, hex)
				}
			}
		})
	}
}

func TestLoad_ModalOverrides(t *testing.T) {
	latte, err := Load("latte")
	if err != nil {
		t.Fatalf("Load(latte): %v", err)
	}
	if latte.Modal.Bg == latte.Base.Highlight {
		t.Errorf("latte modal bg should override the base highlight")
	}
	if latte.Modal.Text != latte.Base.Fg {
		t.Errorf("modal text = %q, want base fg %q", latte.Modal.Text, latte.Base.Fg)
	}

	mocha, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha): %v", err)
	}
	if mocha.Modal.Bg != mocha.Base.Highlight || mocha.Modal.Border != mocha.Base.Accent {
		t.Errorf("mocha modal = %+v, want derived from base", mocha.Modal)
	}
}

func TestAvailable(t *testing.T) {
	available := Available()

	expected := []string{"mocha", "macchiato", "frappe", "latte"}
	if len(available) != len(expected) {
		t.Fatalf("Available() returned %d themes, want %d", len(available), len(expected))
	}
	for i, want := range expected {
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}

	available[0] = "changed"
	if Available()[0] != "mocha" {
		t.Error("Available() exposes its backing slice")
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
		{name: "theme outside catppuccin set", theme: "light", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}
