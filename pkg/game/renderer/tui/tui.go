package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/engine/input"
	"bobfviewer/pkg/engine/terminal"
	"bobfviewer/pkg/game/controls"
	"bobfviewer/pkg/game/renderer"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

// Icon constants for the terminal map
const (
	PlayerIcon     = "@"
	IconWall       = "▒"
	IconExit       = "△"
	IconMine       = "¤"
	IconGrid       = "·"
	IconVoid       = " "
	IconProjectile = "*"
	IconPotion     = "!"
	IconBeer       = "B"
	IconWand       = "/"
	IconAxe        = "T"
	IconJunk       = "$"
)

var itemIcons = map[visual.TextureKey]string{
	visual.TexturePotion:     IconPotion,
	visual.TextureBeer:       IconBeer,
	visual.TextureWeaponWand: IconWand,
	visual.TextureWeaponAxe:  IconAxe,
	visual.TextureJunk1:      IconJunk,
	visual.TextureJunk2:      IconJunk,
	visual.TextureJunk3:      IconJunk,
}

// helpActions is the order of the key help line
var helpActions = []input.Action{
	input.ActionToggleMapGrid,
	input.ActionToggleItemLabels,
	input.ActionToggleBeer,
	input.ActionScreenshot,
	input.ActionDumpMap,
	input.ActionQuit,
}

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation.
// The terminal width is the container width, so a tile is TileWidth
// characters wide and one map row is one line.
type TUIRenderer struct {
	Store    *state.Store
	Builder  *visual.Builder
	Controls *controls.Controller
	Log      logrus.FieldLogger

	Out   io.Writer
	In    io.Reader
	Width func() int

	// NoColor disables ANSI styling
	NoColor bool

	colorWall       color.Style
	colorExit       color.Style
	colorMine       color.Style
	colorItem       color.Style
	colorProjectile color.Style
	colorLabel      color.Style
	colorSubtle     color.Style
	colorError      color.Style

	mu      sync.Mutex
	message string
}

// New creates a new TUI renderer on stdin and stdout
func New(store *state.Store, builder *visual.Builder, ctrl *controls.Controller, log logrus.FieldLogger) *TUIRenderer {
	return &TUIRenderer{
		Store:    store,
		Builder:  builder,
		Controls: ctrl,
		Log:      log,
		Out:      os.Stdout,
		In:       os.Stdin,
		Width:    terminal.GetWidth,
		NoColor:  !terminal.IsTerminal(),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorMine = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorProjectile = color.Style{color.FgYellow, color.OpBold}
	t.colorLabel = color.Style{color.FgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorError = color.Style{color.FgRed, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.NoColor {
		return
	}
	fmt.Fprint(t.Out, "\033[H\033[2J")
}

// ShowMessage displays a message under the map on the next redraw
func (t *TUIRenderer) ShowMessage(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = msg
}

func (t *TUIRenderer) takeMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Run redraws on every store change and applies line commands from In
// until ctx ends or the user quits.
func (t *TUIRenderer) Run(ctx context.Context) error {
	lines := input.ReadLines(ctx, t.In)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	var lastVersion uint64
	drawn := false

	for {
		t.Store.SetContainerWidth(t.Width())
		snap := t.Store.Snapshot()
		if !drawn || snap.Version != lastVersion {
			t.Clear()
			t.RenderFrame(t.Out, snap)
			drawn, lastVersion = true, snap.Version
		}

		select {
		case <-ctx.Done():
			return nil

		case raw, ok := <-lines:
			if !ok {
				// stdin closed; keep watching until ctx ends
				lines = nil
				continue
			}
			outcome := t.Controls.ProcessIntent(input.Resolve(raw))
			if outcome.Quit {
				fmt.Fprintln(t.Out, outcome.Message)
				return nil
			}
			t.ShowMessage(outcome.Message)
			drawn = false

		case <-ticker.C:
		}
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.NoColor {
		return text
	}
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleMine:
		return t.colorMine.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleProjectile:
		return t.colorProjectile.Sprint(text)
	case renderer.StyleLabel:
		return t.colorLabel.Sprint(text)
	case renderer.StyleSubtle, renderer.StyleFloor:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleError:
		return t.colorError.Sprint(text)
	default:
		return text
	}
}

// tinted colours a player glyph with its tint
func (t *TUIRenderer) tinted(text string, tint visual.Tint) string {
	if t.NoColor {
		return text
	}
	c := tint.RGBA()
	return color.RGB(c.R, c.G, c.B).Sprint(text)
}

// RenderFrame renders a complete frame for snap to w
func (t *TUIRenderer) RenderFrame(w io.Writer, snap state.Snapshot) {
	if msg, ok := renderer.StatusText(snap); ok {
		fmt.Fprintln(w, msg)
		t.printFooter(w)
		return
	}

	frame, ok := t.Builder.Build(visual.SceneFromSnapshot(snap))
	if !ok || frame.Dimensions.TileWidth < 1 {
		fmt.Fprintln(w, t.StyleText(gotext.Get("TERMINAL_TOO_NARROW"), renderer.StyleError))
		t.printFooter(w)
		return
	}

	if snap.Map.Name != "" {
		fmt.Fprintln(w, t.StyleText(snap.Map.Name, renderer.StyleLabel))
	}
	t.printMap(w, frame)

	var labels []visual.Primitive
	for _, p := range frame.Primitives {
		if p.Kind == visual.KindLabel && p.Label != nil {
			labels = append(labels, p)
		}
	}
	if len(labels) > 0 {
		fmt.Fprintln(w)
		for _, p := range labels {
			style := renderer.StyleLabel
			if p.Alpha < 1 {
				style = renderer.StyleSubtle
			}
			fmt.Fprintln(w, "- "+t.StyleText(strings.ReplaceAll(p.Label.Text, "\n", " "), style))
		}
	}

	if msg, ok := renderer.StateErrorText(snap); ok {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.StyleText(msg, renderer.StyleError))
	}
	t.printFooter(w)
}

// printMap paints the tile grid of frame, one line per map row
func (t *TUIRenderer) printMap(w io.Writer, frame visual.Frame) {
	dims := frame.Dimensions
	tw := dims.TileWidth

	floor := strings.Repeat(IconVoid, tw)
	for _, p := range frame.Primitives {
		if p.Kind == visual.KindGridLine {
			floor = t.StyleText(IconGrid, renderer.StyleFloor) + strings.Repeat(IconVoid, tw-1)
			break
		}
	}

	cells := make([][]string, dims.Height)
	for row := range cells {
		cells[row] = make([]string, dims.Width)
		for col := range cells[row] {
			cells[row][col] = floor
		}
	}

	put := func(p visual.Primitive, text string) {
		x, y := p.X, p.Y
		if p.Kind == visual.KindProjectile && p.Tween != nil {
			x, y = p.Tween.To.XInPx, p.Tween.To.YInPx
		}
		row, col := int(y)/tw, int(x)/tw
		if x < 0 || y < 0 || row >= dims.Height || col >= dims.Width {
			return
		}
		cells[row][col] = text
	}

	for _, p := range frame.Primitives {
		switch p.Kind {
		case visual.KindTile:
			put(p, t.tileCell(p.Texture, tw))
		case visual.KindItem:
			icon, ok := itemIcons[p.Texture]
			if !ok {
				icon = IconJunk
			}
			put(p, centerGlyph(t.StyleText(icon, renderer.StyleItem), tw))
		case visual.KindPlayer:
			put(p, centerGlyph(t.tinted(PlayerIcon, p.Tint), tw))
		case visual.KindProjectile:
			put(p, centerGlyph(t.StyleText(IconProjectile, renderer.StyleProjectile), tw))
		}
	}

	for _, row := range cells {
		fmt.Fprintln(w, strings.Join(row, ""))
	}
}

func (t *TUIRenderer) tileCell(texture visual.TextureKey, tw int) string {
	switch texture {
	case visual.TextureWall:
		return t.StyleText(strings.Repeat(IconWall, tw), renderer.StyleWall)
	case visual.TextureExit:
		return centerGlyph(t.StyleText(IconExit, renderer.StyleExit), tw)
	case visual.TextureMine:
		return centerGlyph(t.StyleText(IconMine, renderer.StyleMine), tw)
	default:
		return strings.Repeat(IconVoid, tw)
	}
}

// centerGlyph pads a single visible glyph to width characters
func centerGlyph(glyph string, width int) string {
	left := (width - 1) / 2
	right := width - 1 - left
	return strings.Repeat(IconVoid, left) + glyph + strings.Repeat(IconVoid, right)
}

// printFooter prints the last message and the key help
func (t *TUIRenderer) printFooter(w io.Writer) {
	if msg := t.takeMessage(); msg != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, msg)
	}

	bindings := input.GetBindingsByAction()
	var help []string
	for _, action := range helpActions {
		codes := bindings[action]
		if len(codes) == 0 {
			continue
		}
		key := codes[0]
		for _, c := range codes {
			if len(c) < len(key) {
				key = c
			}
		}
		help = append(help, fmt.Sprintf("[%s] %s", key, dynamicGet(input.ActionName(action))))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.StyleText(strings.Join(help, "  "), renderer.StyleSubtle))
	fmt.Fprint(w, "> ")
}
