package ebiten

import (
	"bobfviewer/pkg/game/renderer"
	"bobfviewer/pkg/game/visual"
)

// refreshSnapshot rebuilds the frame when the store has changed since the
// last build. Building only on change keeps diagnostics to one log line
// per delivery.
func (e *EbitenRenderer) refreshSnapshot() {
	snap := e.store.Snapshot()
	if e.snapshot.valid && snap.Version == e.snapshot.version {
		return
	}

	next := renderSnapshot{valid: true, version: snap.Version}
	next.status, next.showStatus = renderer.StatusText(snap)
	next.stateError, next.showStateError = renderer.StateErrorText(snap)
	if !next.showStatus {
		next.frame, next.hasFrame = e.builder.Build(visual.SceneFromSnapshot(snap))
	}

	e.snapshot = next
	e.animator.Sync(next.frame)
}
