package gui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gui "github.com/go-theft-auto/guitext"
)

func TestParseStyleTOML(t *testing.T) {
	data := `
theme = "light"
body_text_style = "monospace"
text_edit_width = 320.0
cursor_blink_hz = 0.0
text_cursor_color = "#ff8800"
dark_bg_color = "#10203040"
`
	got, err := gui.ParseStyle([]byte(data), "toml")
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}

	want := gui.LightStyle()
	want.BodyTextStyle = gui.TextStyleMonospace
	want.Spacing.TextEditWidth = 320
	want.Visuals.CursorBlinkHz = 0
	want.Visuals.TextCursorColor = gui.RGBA(0xff, 0x88, 0x00, 0xff)
	want.Visuals.DarkBgColor = gui.RGBA(0x10, 0x20, 0x30, 0x40)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStyleYAML(t *testing.T) {
	data := `
item_spacing: 8
corner_radius: 0
text_color: "#ffffff"
`
	got, err := gui.ParseStyle([]byte(data), "yml")
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}

	want := gui.DefaultStyle()
	want.Spacing.ItemSpacing = 8
	want.Visuals.Widgets.Inactive.CornerRadius = 0
	want.Visuals.Widgets.Hovered.CornerRadius = 0
	want.Visuals.Widgets.Active.CornerRadius = 0
	want.Visuals.OverrideTextColor = gui.ColorWhite
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStyleEmpty(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		got, err := gui.ParseStyle(nil, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if diff := cmp.Diff(gui.DefaultStyle(), got); diff != "" {
			t.Errorf("%s: empty config should give the default style (-want +got):\n%s", format, diff)
		}
	}
}

func TestParseStyleErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		errSub string
	}{
		{"unknown toml key", `colour = "red"`, "toml", "strict mode"},
		{"unknown yaml key", `colour: red`, "yaml", "colour"},
		{"bad theme", `theme = "neon"`, "toml", "neon"},
		{"bad color", `text_color = "#12"`, "toml", "text_color"},
		{"negative blink", `cursor_blink_hz = -1.0`, "toml", "cursor_blink_hz"},
		{"bad text style", `body_text_style = "huge"`, "toml", "huge"},
		{"bad format", ``, "json", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gui.ParseStyle([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error %q does not mention %q", err, tt.errSub)
			}
		})
	}
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("text_edit_width = 100.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := gui.LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Spacing.TextEditWidth != 100 {
		t.Errorf("TextEditWidth = %v, want 100", s.Spacing.TextEditWidth)
	}

	if _, err := gui.LoadStyle(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#ffffff", gui.ColorWhite, true},
		{"ff0000", gui.ColorRed, true},
		{"#00000000", gui.ColorTransparent, true},
		{"#fff", 0, false},
		{"#gggggg", 0, false},
	}
	for _, tt := range tests {
		got, err := gui.ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", tt.in, got, tt.want)
		}
	}
}
