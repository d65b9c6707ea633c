package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the viewer's user.
type Action int

const (
	ActionNone Action = iota

	// Presentation toggles
	ActionToggleMapGrid
	ActionToggleItemLabels
	ActionToggleBeer

	// Meta
	ActionScreenshot
	ActionDumpMap
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "g", "escape", "grid").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten reports presses once through inpututil and the terminal delivers
// whole lines, so this only normalizes the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"g":    ActionToggleMapGrid,
	"grid": ActionToggleMapGrid,

	"l":      ActionToggleItemLabels,
	"labels": ActionToggleItemLabels,

	"b":    ActionToggleBeer,
	"beer": ActionToggleBeer,

	"p":          ActionScreenshot,
	"f12":        ActionScreenshot,
	"screenshot": ActionScreenshot,

	"m":    ActionDumpMap,
	"dump": ActionDumpMap,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw input through every layer
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns the translation key of an action's name.
func ActionName(a Action) string {
	switch a {
	case ActionToggleMapGrid:
		return "TOGGLE_MAP_GRID"
	case ActionToggleItemLabels:
		return "TOGGLE_ITEM_LABELS"
	case ActionToggleBeer:
		return "TOGGLE_BEER"
	case ActionScreenshot:
		return "SCREENSHOT"
	case ActionDumpMap:
		return "DUMP_MAP"
	case ActionQuit:
		return "QUIT"
	default:
		return "NONE"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// stable order so help text doesn't flicker
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
