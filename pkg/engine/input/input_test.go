package input

import (
	"context"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"g", ActionToggleMapGrid},
		{" G ", ActionToggleMapGrid},
		{"l", ActionToggleItemLabels},
		{"b", ActionToggleBeer},
		{"p", ActionScreenshot},
		{"escape", ActionQuit},
		{"q", ActionQuit},
		{"zzz", ActionNone},
	}
	for _, tt := range tests {
		if got := Resolve(RawInput{Device: DeviceKeyboard, Code: tt.code}); got.Action != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	want := []string{"escape", "q", "quit"}
	if strings.Join(codes, ",") != strings.Join(want, ",") {
		t.Errorf("quit bindings = %v, want %v", codes, want)
	}
}

func TestReadLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []string
	for raw := range ReadLines(ctx, strings.NewReader("g\n\nbeer\r\nq\n")) {
		if raw.Device != DeviceTerminal {
			t.Errorf("device = %v, want terminal", raw.Device)
		}
		got = append(got, raw.Code)
	}
	if strings.Join(got, "|") != "g|beer|q" {
		t.Errorf("lines = %q", got)
	}
}
