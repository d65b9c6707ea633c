package visual

import (
	"sort"
)

// ZIndex is the paint priority of a primitive; lower is painted first
type ZIndex int

const (
	ZFloor       ZIndex = 0
	ZGrid        ZIndex = 1
	ZStatic      ZIndex = 5
	ZItem        ZIndex = 10
	ZPlayer      ZIndex = 20
	ZProjectile  ZIndex = 25
	ZItemLabel   ZIndex = 30
	ZPlayerLabel ZIndex = 40
)

// SortPrimitives orders primitives by Z, keeping the build order within a layer
func SortPrimitives(primitives []Primitive) {
	sort.SliceStable(primitives, func(i, j int) bool {
		return primitives[i].Z < primitives[j].Z
	})
}
