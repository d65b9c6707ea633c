package visual

import (
	"fmt"
	"strconv"

	"bobfviewer/pkg/game/state"
)

// ItemVisual is the resolved look of an item. The set of variants is closed:
// JunkVisual, WeaponVisual and PotionVisual.
type ItemVisual interface {
	Texture() TextureKey
	Label() (string, bool)
	itemVisual()
}

// JunkVisual is a piece of junk for sale, possibly discounted
type JunkVisual struct {
	Icon            TextureKey
	Price           float64
	DiscountPercent float64
}

func (JunkVisual) itemVisual() {}

// Texture returns the junk icon
func (v JunkVisual) Texture() TextureKey { return v.Icon }

// Label returns the price, with the discount on a second line when there is one
func (v JunkVisual) Label() (string, bool) {
	if v.DiscountPercent > 0 {
		return fmt.Sprintf("%s €\n-%s %%", formatNumber(v.Price), formatNumber(v.DiscountPercent)), true
	}
	return formatNumber(v.Price) + " €", true
}

// WeaponVisual is a weapon for sale
type WeaponVisual struct {
	Icon  TextureKey
	Price float64
}

func (WeaponVisual) itemVisual() {}

// Texture returns the weapon icon
func (v WeaponVisual) Texture() TextureKey { return v.Icon }

// Label returns the price
func (v WeaponVisual) Label() (string, bool) {
	return formatNumber(v.Price) + " €", true
}

// PotionVisual is a potion; it never has a label
type PotionVisual struct {
	Icon TextureKey
}

func (PotionVisual) itemVisual() {}

// Texture returns the potion icon
func (v PotionVisual) Texture() TextureKey { return v.Icon }

// Label always reports no label
func (PotionVisual) Label() (string, bool) { return "", false }

// ResolveItem resolves the visual of an item. ok is false for item types
// the viewer does not draw; callers skip those silently.
func ResolveItem(item state.Item, res *Resources, showBeer bool) (ItemVisual, bool) {
	switch item.Type {
	case state.ItemJunk:
		key := fmt.Sprintf("%d%d", item.Position.X, item.Position.Y)
		return JunkVisual{
			Icon:            PickByString(key, res.Junk),
			Price:           item.Price,
			DiscountPercent: item.DiscountPercent,
		}, true
	case state.ItemWeapon:
		return WeaponVisual{
			Icon:  weaponTexture(item.Position.X, item.Position.Y),
			Price: item.Price,
		}, true
	case state.ItemPotion:
		if showBeer {
			return PotionVisual{Icon: TextureBeer}, true
		}
		return PotionVisual{Icon: TexturePotion}, true
	default:
		return nil, false
	}
}

// weaponTexture splits weapons between two icons by cell parity
func weaponTexture(x, y int) TextureKey {
	sum := x + y
	if sum < 0 {
		sum = -sum
	}
	if sum%2 == 0 {
		return TextureWeaponWand
	}
	return TextureWeaponAxe
}

// formatNumber prints integral values without a fraction and others with
// the shortest exact representation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
