package visual

import (
	"image/color"
)

// TextureKey names a texture in the surface's texture table
type TextureKey string

const (
	TextureWall       TextureKey = "wall"
	TextureFloor      TextureKey = "floor"
	TextureMine       TextureKey = "mine"
	TextureExit       TextureKey = "exit"
	TexturePotion     TextureKey = "potion"
	TextureBeer       TextureKey = "beer"
	TextureWeaponWand TextureKey = "weapon-wand"
	TextureWeaponAxe  TextureKey = "weapon-axe"
	TextureJunk1      TextureKey = "junk-001"
	TextureJunk2      TextureKey = "junk-002"
	TextureJunk3      TextureKey = "junk-003"
	TexturePlayer1    TextureKey = "player-001"
	TexturePlayer2    TextureKey = "player-002"
	TexturePlayer3    TextureKey = "player-003"
	TexturePlayer4    TextureKey = "player-004"
	TexturePlayer5    TextureKey = "player-005"
	TextureEnergyBall TextureKey = "energy-ball"
	TextureLabel      TextureKey = "label"
)

// AllTextures lists every key a surface has to provide
var AllTextures = []TextureKey{
	TextureWall, TextureFloor, TextureMine, TextureExit,
	TexturePotion, TextureBeer, TextureWeaponWand, TextureWeaponAxe,
	TextureJunk1, TextureJunk2, TextureJunk3,
	TexturePlayer1, TexturePlayer2, TexturePlayer3, TexturePlayer4, TexturePlayer5,
	TextureEnergyBall, TextureLabel,
}

// Tint is a 0xRRGGBB colour multiplied into a sprite
type Tint uint32

// RGBA returns the tint as an opaque colour
func (t Tint) RGBA() color.RGBA {
	return color.RGBA{R: uint8(t >> 16), G: uint8(t >> 8), B: uint8(t), A: 0xff}
}

// GridColor is the colour of the optional map grid
const GridColor Tint = 0xD97706

// Resources is the texture and style table handed to the builder.
// It is built once at startup.
type Resources struct {
	Junk    []TextureKey
	Players []TextureKey
	Tints   []Tint

	// FloorTextureWidth is the pixel width of the floor texture, which
	// holds 12 tiles per side.
	FloorTextureWidth float64

	LabelStyle       LabelStyle
	ItemLabelAlpha   float64
	PlayerLabelAlpha float64
	GridAlpha        float64
}

// DefaultResources returns the stock variant lists.
// Player tints are the tropical-1333 palette.
func DefaultResources() *Resources {
	return &Resources{
		Junk:    []TextureKey{TextureJunk1, TextureJunk2, TextureJunk3},
		Players: []TextureKey{TexturePlayer1, TexturePlayer2, TexturePlayer3, TexturePlayer4, TexturePlayer5},
		Tints: []Tint{
			0x991B4B,
			0xE15365,
			0xFFA472,
			0xFFDC8A,
			0xFEFFF0,
			0xAFE06E,
			0x21DB81,
		},
		FloorTextureWidth: 1024,
		LabelStyle:        DefaultLabelStyle(),
		ItemLabelAlpha:    0.6,
		PlayerLabelAlpha:  1,
		GridAlpha:         0.6,
	}
}

// PlayerTexture returns the sprite for a player name
func (r *Resources) PlayerTexture(name string) TextureKey {
	return PickByString(name, r.Players)
}

// PlayerTint returns the tint for a player name
func (r *Resources) PlayerTint(name string) Tint {
	return PickByString(name, r.Tints)
}
