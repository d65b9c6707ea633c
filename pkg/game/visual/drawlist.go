package visual

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/layout"
	"bobfviewer/pkg/game/state"
)

// Kind is the kind of a draw primitive
type Kind int

const (
	KindFloor Kind = iota
	KindGridLine
	KindTile
	KindItem
	KindPlayer
	KindProjectile
	KindLabel
)

var kindNames = map[Kind]string{
	KindFloor:      "floor",
	KindGridLine:   "grid-line",
	KindTile:       "tile",
	KindItem:       "item",
	KindPlayer:     "player",
	KindProjectile: "projectile",
	KindLabel:      "label",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Anchor says which point of a sprite (X, Y) refers to
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// MarshalText encodes the anchor by name
func (a Anchor) MarshalText() ([]byte, error) {
	if a == AnchorCenter {
		return []byte("center"), nil
	}
	return []byte("top-left"), nil
}

// Primitive is one thing for a surface to paint.
//
// Sprites use X, Y, Width, Height and Anchor. Grid lines run from (X, Y) to
// (X2, Y2). Labels carry their panel in Label. Projectiles start at (X, Y)
// and carry the motion in Tween.
type Primitive struct {
	Kind      Kind       `json:"kind"`
	Key       string     `json:"key"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	X2        float64    `json:"x2,omitempty"`
	Y2        float64    `json:"y2,omitempty"`
	Width     float64    `json:"width,omitempty"`
	Height    float64    `json:"height,omitempty"`
	Anchor    Anchor     `json:"anchor"`
	Texture   TextureKey `json:"texture,omitempty"`
	Tint      Tint       `json:"tint,omitempty"`
	HasTint   bool       `json:"hasTint,omitempty"`
	Rotation  float64    `json:"rotation,omitempty"`
	Z         ZIndex     `json:"z"`
	Alpha     float64    `json:"alpha"`
	TileScale float64    `json:"tileScale,omitempty"`
	Label     *LabelBox  `json:"label,omitempty"`
	Tween     *Tween     `json:"tween,omitempty"`
}

// Scene is the input of one build
type Scene struct {
	Map            *world.GameMap
	State          *state.GameState
	ContainerWidth *int
	Flags          state.Flags
}

// SceneFromSnapshot builds a scene from the store's latest snapshot
func SceneFromSnapshot(snap state.Snapshot) Scene {
	return Scene{
		Map:            snap.Map,
		State:          snap.State,
		ContainerWidth: snap.ContainerWidth,
		Flags:          snap.Flags,
	}
}

// Frame is the result of one build
type Frame struct {
	Dimensions  layout.MapDimensions `json:"dimensions"`
	Primitives  []Primitive          `json:"primitives"`
	Diagnostics []world.UnknownTile  `json:"diagnostics"`
}

// Builder turns scenes into frames
type Builder struct {
	Resources *Resources
	Measurer  TextMeasurer
	Log       logrus.FieldLogger
}

// NewBuilder creates a builder with the given resources and text measurer
func NewBuilder(res *Resources, measurer TextMeasurer, log logrus.FieldLogger) *Builder {
	return &Builder{Resources: res, Measurer: measurer, Log: log}
}

// Build derives the full draw list for scene. ok is false while the map or
// the container width is unknown; the surface shows a loading state then.
func (b *Builder) Build(scene Scene) (Frame, bool) {
	dims, ok := layout.Compute(scene.Map, scene.ContainerWidth)
	if !ok {
		return Frame{}, false
	}

	frame := Frame{Dimensions: dims}

	b.addStatic(&frame, scene.Map, scene.Flags)
	if scene.State != nil {
		b.addDynamic(&frame, scene.State, scene.Flags)
	}

	SortPrimitives(frame.Primitives)
	return frame, true
}

func (b *Builder) addStatic(frame *Frame, gameMap *world.GameMap, flags state.Flags) {
	dims := frame.Dimensions
	tileWidth := float64(dims.TileWidth)

	frame.Primitives = append(frame.Primitives, Primitive{
		Kind:      KindFloor,
		Key:       "map-floor",
		Width:     float64(dims.StageWidth),
		Height:    float64(dims.StageHeight),
		Texture:   TextureFloor,
		Z:         ZFloor,
		Alpha:     1,
		TileScale: dims.FloorTileScale(b.Resources.FloorTextureWidth),
	})

	if flags.ShowMapGrid {
		frame.Primitives = append(frame.Primitives, gridLines(dims, b.Resources.GridAlpha)...)
	}

	report := world.ClassifyMap(gameMap)
	for _, tile := range report.Static {
		frame.Primitives = append(frame.Primitives, Primitive{
			Kind:    KindTile,
			Key:     fmt.Sprintf("wall-%d-%d", tile.Row, tile.Col),
			X:       float64(tile.Col) * tileWidth,
			Y:       float64(tile.Row) * tileWidth,
			Width:   tileWidth,
			Height:  tileWidth,
			Anchor:  AnchorTopLeft,
			Texture: tileTexture(tile.Category),
			Z:       ZStatic,
			Alpha:   1,
		})
	}

	for _, unknown := range report.Unknown {
		b.log().WithFields(logrus.Fields{
			"code": string(unknown.Code),
			"row":  unknown.Row,
			"col":  unknown.Col,
		}).Error("Unknown tile type")
		frame.Diagnostics = append(frame.Diagnostics, unknown)
	}
}

// gridLines returns one line per interior row and column boundary
func gridLines(dims layout.MapDimensions, alpha float64) []Primitive {
	tileWidth := float64(dims.TileWidth)
	stageWidth := float64(dims.StageWidth)
	stageHeight := float64(dims.StageHeight)

	var lines []Primitive
	for y := 1; y < dims.Height; y++ {
		py := float64(y) * tileWidth
		lines = append(lines, Primitive{
			Kind: KindGridLine, Key: "map-grid-row-" + strconv.Itoa(y),
			X: 0, Y: py, X2: stageWidth, Y2: py,
			Tint: GridColor, HasTint: true, Z: ZGrid, Alpha: alpha,
		})
	}
	for x := 1; x < dims.Width; x++ {
		px := float64(x) * tileWidth
		lines = append(lines, Primitive{
			Kind: KindGridLine, Key: "map-grid-col-" + strconv.Itoa(x),
			X: px, Y: 0, X2: px, Y2: stageHeight,
			Tint: GridColor, HasTint: true, Z: ZGrid, Alpha: alpha,
		})
	}
	return lines
}

func tileTexture(category world.TileCategory) TextureKey {
	switch category {
	case world.TileWall:
		return TextureWall
	case world.TileExit:
		return TextureExit
	case world.TileMine:
		return TextureMine
	default:
		return ""
	}
}

func (b *Builder) addDynamic(frame *Frame, gs *state.GameState, flags state.Flags) {
	dims := frame.Dimensions
	tileWidth := float64(dims.TileWidth)
	res := b.Resources

	for _, item := range gs.Items {
		look, ok := ResolveItem(item, res, flags.ShowBeer)
		if !ok {
			continue
		}
		center := world.ToPixel(item.Position, dims.TileWidth, dims.HalfTileWidth)
		key := fmt.Sprintf("item-%s-%d-%d", item.Type, item.Position.X, item.Position.Y)

		frame.Primitives = append(frame.Primitives, Primitive{
			Kind:    KindItem,
			Key:     key,
			X:       center.XInPx,
			Y:       center.YInPx,
			Width:   tileWidth,
			Height:  tileWidth,
			Anchor:  AnchorCenter,
			Texture: look.Texture(),
			Z:       ZItem,
			Alpha:   1,
		})

		if !flags.ShowItemLabels {
			continue
		}
		if text, ok := look.Label(); ok {
			frame.Primitives = append(frame.Primitives, b.label(key+"-label", text, center, dims.HalfTileWidth, ZItemLabel, res.ItemLabelAlpha))
		}
	}

	for _, player := range gs.Players {
		center := world.ToPixel(player.Position, dims.TileWidth, dims.HalfTileWidth)
		key := "player-" + player.Name

		frame.Primitives = append(frame.Primitives, Primitive{
			Kind:    KindPlayer,
			Key:     key,
			X:       center.XInPx,
			Y:       center.YInPx,
			Width:   tileWidth,
			Height:  tileWidth,
			Anchor:  AnchorCenter,
			Texture: res.PlayerTexture(player.Name),
			Tint:    res.PlayerTint(player.Name),
			HasTint: true,
			Z:       ZPlayer,
			Alpha:   1,
		})
		frame.Primitives = append(frame.Primitives, b.label(key+"-label", PlayerLabelText(player), center, dims.HalfTileWidth, ZPlayerLabel, res.PlayerLabelAlpha))
	}

	for _, line := range gs.ShootingLines {
		if !Visible(line) {
			continue
		}
		from := world.ToPixel(line.FromPosition, dims.TileWidth, dims.HalfTileWidth)
		to := world.ToPixel(line.ToPosition, dims.TileWidth, dims.HalfTileWidth)
		tween := NewTween(from, to)

		frame.Primitives = append(frame.Primitives, Primitive{
			Kind:     KindProjectile,
			Key:      ProjectileKey(line),
			X:        from.XInPx,
			Y:        from.YInPx,
			Width:    tileWidth,
			Height:   tileWidth,
			Anchor:   AnchorCenter,
			Texture:  TextureEnergyBall,
			Rotation: AngleTo(from, to),
			Z:        ZProjectile,
			Alpha:    1,
			Tween:    &tween,
		})
	}
}

func (b *Builder) label(key, text string, anchor world.PixelPosition, halfTileWidth int, z ZIndex, alpha float64) Primitive {
	box := ComputeLabelBox(text, anchor, halfTileWidth, b.Resources.LabelStyle, b.measurer())
	return Primitive{
		Kind:    KindLabel,
		Key:     key,
		X:       box.X,
		Y:       box.Y,
		Width:   box.Width,
		Height:  box.Height,
		Anchor:  AnchorTopLeft,
		Texture: TextureLabel,
		Z:       z,
		Alpha:   alpha,
		Label:   &box,
	}
}

func (b *Builder) measurer() TextMeasurer {
	if b.Measurer == nil {
		return MonospaceMeasurer{}
	}
	return b.Measurer
}

func (b *Builder) log() logrus.FieldLogger {
	if b.Log == nil {
		return logrus.StandardLogger()
	}
	return b.Log
}
