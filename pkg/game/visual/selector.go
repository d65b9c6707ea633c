// Package visual turns a map and a game state into an ordered list of draw
// primitives. Nothing here touches a rendering surface.
package visual

// PickByString deterministically picks one of options for key.
// The key's code points are summed and reduced modulo len(options), so the
// same name always gets the same variant across restarts.
// options must not be empty.
func PickByString[T any](key string, options []T) T {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}
	return options[sum%uint64(len(options))]
}
